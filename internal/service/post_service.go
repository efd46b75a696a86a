package service

import (
	"context"
	"fmt"
	"strings"

	"devconnector/internal/models"
	"devconnector/internal/repository"
)

// PostService implements the post, like and comment rules.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a PostService using the given repositories.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost creates a post with the author's name and avatar snapshotted
// from their current user record.
func (s *PostService) CreatePost(ctx context.Context, userID uint, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		verr := &models.ValidationErrors{}
		verr.Add("Text is required")
		return nil, verr
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInternalError(fmt.Errorf("user %d not found for post creation", userID))
	}

	post := &models.Post{
		UserID:   userID,
		Text:     text,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a post by id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post not found")
	}
	return post, nil
}

// DeletePost removes a post; only the owner may do so.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost adds the caller's like-record and returns the resulting like
// list. A second like from the same user fails; the membership check and
// insert are a single conditional write, so concurrent duplicates cannot
// slip through.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	inserted, err := s.postRepo.InsertLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, models.NewValidationError("Post already liked")
	}

	return s.postRepo.ListLikes(ctx, postID)
}

// UnlikePost removes the caller's like-record and returns the remaining
// like list; unliking a post never liked fails.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	removed, err := s.postRepo.DeleteLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewValidationError("Post has not yet been liked")
	}

	return s.postRepo.ListLikes(ctx, postID)
}

// AddComment prepends a comment carrying a snapshot of the caller's name
// and avatar, and returns the full updated comment list.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		verr := &models.ValidationErrors{}
		verr.Add("Text is required")
		return nil, verr
	}

	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInternalError(fmt.Errorf("user %d not found for comment creation", userID))
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.ListComments(ctx, postID)
}

// DeleteComment removes a comment by id; only the comment's author may do so.
// It returns the removed comment's identifier.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID uint) (uint, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return 0, err
	}

	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, models.NewNotFoundError("Comment does not exist")
	}
	if comment.UserID != userID {
		return 0, models.NewUnauthorizedError("User not authorized")
	}

	if err := s.postRepo.DeleteComment(ctx, commentID); err != nil {
		return 0, err
	}
	return commentID, nil
}
