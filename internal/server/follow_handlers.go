package server

import (
	"connectly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewer := s.currentViewer(c)
	follow, ferr := s.followService.FollowUser(c.Context(), viewer.ID, targetID)
	if ferr != nil {
		return models.RespondWithAppError(c, ferr)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewer := s.currentViewer(c)
	if uerr := s.followService.UnfollowUser(c.Context(), viewer.ID, targetID); uerr != nil {
		return models.RespondWithAppError(c, uerr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollows handles GET /api/follows: the users the current user follows.
func (s *Server) GetFollows(c *fiber.Ctx) error {
	viewer := s.currentViewer(c)

	follows, err := s.followService.GetFollowing(c.Context(), viewer.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(follows)
}
