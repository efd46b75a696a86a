package server

import (
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// postNotFound is the error for any post id that does not resolve,
// malformed ids included.
func postNotFound() error {
	return models.NewNotFoundError("Post not found")
}

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		verr := &models.ValidationErrors{}
		verr.Add("Invalid request body")
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	post, err := s.postService.CreatePost(c.Context(), currentUserID(c), req.Text)
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(post)
}

// GetPosts handles GET /api/posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.Context())
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := paramID(c, "id")
	if !ok {
		return s.respondError(c, postNotFound(), fiber.StatusNotFound)
	}

	post, err := s.postService.GetPost(c.Context(), postID)
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id; only the owner may delete.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := paramID(c, "id")
	if !ok {
		return s.respondError(c, postNotFound(), fiber.StatusNotFound)
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), postID); err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id and returns the post's likes.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := paramID(c, "id")
	if !ok {
		return s.respondError(c, postNotFound(), fiber.StatusNotFound)
	}

	likes, err := s.postService.LikePost(c.Context(), currentUserID(c), postID)
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id and returns the remaining likes.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := paramID(c, "id")
	if !ok {
		return s.respondError(c, postNotFound(), fiber.StatusNotFound)
	}

	likes, err := s.postService.UnlikePost(c.Context(), currentUserID(c), postID)
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(likes)
}

// AddComment handles POST /api/posts/comment/:postId and returns the post's
// full comment list, newest first.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, ok := paramID(c, "postId")
	if !ok {
		return s.respondError(c, postNotFound(), fiber.StatusNotFound)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		verr := &models.ValidationErrors{}
		verr.Add("Invalid request body")
		return models.RespondWithError(c, fiber.StatusBadRequest, verr)
	}

	comments, err := s.postService.AddComment(c.Context(), currentUserID(c), postID, req.Text)
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:postId/:commentId and
// returns the removed comment's id.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, ok := paramID(c, "postId")
	if !ok {
		return s.respondError(c, postNotFound(), fiber.StatusNotFound)
	}
	commentID, ok := paramID(c, "commentId")
	if !ok {
		return s.respondError(c, models.NewNotFoundError("Comment does not exist"), fiber.StatusNotFound)
	}

	removedID, err := s.postService.DeleteComment(c.Context(), currentUserID(c), postID, commentID)
	if err != nil {
		return s.respondError(c, err, fiber.StatusNotFound)
	}
	return c.JSON(fiber.Map{"removed": removedID})
}
