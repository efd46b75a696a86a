package service

import (
	"context"

	"devconnector/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	deleteCascadeFn func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, userID uint) error {
	return s.deleteCascadeFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Test User", Avatar: "https://example.com/a.png"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(context.Context, uint) (*models.Profile, error)
	listFn             func(context.Context) ([]*models.Profile, error)
	createFn           func(context.Context, *models.Profile) error
	updateFn           func(context.Context, *models.Profile) error
	addExperienceFn    func(context.Context, *models.Experience) error
	deleteExperienceFn func(context.Context, uint, uint) (int64, error)
	addEducationFn     func(context.Context, *models.Education) error
	deleteEducationFn  func(context.Context, uint, uint) (int64, error)
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]*models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, exp *models.Experience) error {
	return s.addExperienceFn(ctx, exp)
}
func (s *profileRepoStub) DeleteExperience(ctx context.Context, profileID, expID uint) (int64, error) {
	return s.deleteExperienceFn(ctx, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, edu *models.Education) error {
	return s.addEducationFn(ctx, edu)
}
func (s *profileRepoStub) DeleteEducation(ctx context.Context, profileID, eduID uint) (int64, error) {
	return s.deleteEducationFn(ctx, profileID, eduID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn:      func(_ context.Context, _ uint) (*models.Profile, error) { return nil, nil },
		listFn:             func(_ context.Context) ([]*models.Profile, error) { return nil, nil },
		createFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		updateFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		addExperienceFn:    func(_ context.Context, _ *models.Experience) error { return nil },
		deleteExperienceFn: func(_ context.Context, _, _ uint) (int64, error) { return 1, nil },
		addEducationFn:     func(_ context.Context, _ *models.Education) error { return nil },
		deleteEducationFn:  func(_ context.Context, _, _ uint) (int64, error) { return 1, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	listFn          func(context.Context) ([]*models.Post, error)
	deleteFn        func(context.Context, uint) error
	insertLikeFn    func(context.Context, uint, uint) (bool, error)
	deleteLikeFn    func(context.Context, uint, uint) (bool, error)
	listLikesFn     func(context.Context, uint) ([]models.Like, error)
	addCommentFn    func(context.Context, *models.Comment) error
	getCommentFn    func(context.Context, uint, uint) (*models.Comment, error)
	deleteCommentFn func(context.Context, uint) error
	listCommentsFn  func(context.Context, uint) ([]models.Comment, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) InsertLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.insertLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) DeleteLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.deleteLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.listLikesFn(ctx, postID)
}
func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	return s.addCommentFn(ctx, comment)
}
func (s *postRepoStub) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return s.getCommentFn(ctx, postID, commentID)
}
func (s *postRepoStub) DeleteComment(ctx context.Context, commentID uint) error {
	return s.deleteCommentFn(ctx, commentID)
}
func (s *postRepoStub) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listCommentsFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:          func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		insertLikeFn:    func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		deleteLikeFn:    func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		listLikesFn:     func(_ context.Context, _ uint) ([]models.Like, error) { return nil, nil },
		addCommentFn:    func(_ context.Context, _ *models.Comment) error { return nil },
		getCommentFn:    func(_ context.Context, _, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		deleteCommentFn: func(_ context.Context, _ uint) error { return nil },
		listCommentsFn:  func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
	}
}
