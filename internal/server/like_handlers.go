package server

import (
	"connectly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:id/likes. Liking an already-liked post
// fails with 409; there is no toggle.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, lerr := s.likeService.LikePost(c.Context(), s.currentViewer(c), postID)
	if lerr != nil {
		return models.RespondWithAppError(c, lerr)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// UnlikePost handles DELETE /api/posts/:id/likes
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if uerr := s.likeService.UnlikePost(c.Context(), s.currentViewer(c), postID); uerr != nil {
		return models.RespondWithAppError(c, uerr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetPostLikes handles GET /api/posts/:id/likes
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)

	likes, lerr := s.likeService.ListLikes(c.Context(), s.currentViewer(c), &postID, page.Limit, page.Offset)
	if lerr != nil {
		return models.RespondWithAppError(c, lerr)
	}

	return c.JSON(likes)
}
