package server

import (
	"connectly/internal/models"
	"connectly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, cerr := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		Viewer:  s.currentViewer(c),
		PostID:  postID,
		Content: req.Content,
	})
	if cerr != nil {
		return models.RespondWithAppError(c, cerr)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetPostComments handles GET /api/posts/:id/comments
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)

	comments, lerr := s.commentService.ListComments(c.Context(), s.currentViewer(c), &postID, page.Limit, page.Offset)
	if lerr != nil {
		return models.RespondWithAppError(c, lerr)
	}

	return c.JSON(comments)
}

// GetComments handles GET /api/comments?post=
func (s *Server) GetComments(c *fiber.Ctx) error {
	page := parsePagination(c, 50)

	comments, err := s.commentService.ListComments(c.Context(), s.currentViewer(c), optionalPostFilter(c), page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(comments)
}

// UpdateComment handles PUT /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, uerr := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		Viewer:    s.currentViewer(c),
		CommentID: commentID,
		Content:   req.Content,
	})
	if uerr != nil {
		return models.RespondWithAppError(c, uerr)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, derr := s.commentService.DeleteComment(c.Context(), s.currentViewer(c), commentID); derr != nil {
		return models.RespondWithAppError(c, derr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
