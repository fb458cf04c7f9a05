package server

import (
	"context"
	"errors"
	"time"

	"connectly/internal/models"
	"connectly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	page := parsePagination(c, 100)

	users, err := s.userService.ListUsers(ctx, page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
				"error": "Request timeout",
			})
		}
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, gerr := s.userService.GetUserByID(c.Context(), id)
	if gerr != nil {
		return models.RespondWithAppError(c, gerr)
	}

	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me. The profile variant decrypts phone
// and address, so only the owner's own requests reach it.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	viewer := s.currentViewer(c)

	user, err := s.userService.GetProfile(c.Context(), viewer.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	viewer := s.currentViewer(c)

	var req struct {
		Bio     string `json:"bio"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:  viewer.ID,
		Bio:     req.Bio,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// SetUserRole handles POST /api/users/:id/role (admin only).
// Admin check is enforced by AdminRequired middleware on the route.
func (s *Server) SetUserRole(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role string `json:"role"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	target, serr := s.userService.SetRole(c.Context(), targetID, models.Role(req.Role))
	if serr != nil {
		return models.RespondWithAppError(c, serr)
	}

	return c.JSON(fiber.Map{"message": "Role updated", "user": target})
}
