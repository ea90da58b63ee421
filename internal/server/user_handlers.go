package server

import (
	"wayfarer/internal/models"
	"wayfarer/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me (protected)
// @Summary Get own profile
// @Description Fetch the authenticated user's profile with follow counts
// @Tags users
// @Produce json
// @Success 200 {object} service.UserProfile
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetProfile(ctx, userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me (protected)
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Username string `json:"username"`
		Bio      string `json:"bio"`
		Avatar   string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id (protected)
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	currentUserID := c.Locals("userID").(uint)

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(ctx, userID, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// SearchUsers handles GET /api/users/search (protected)
// @Summary Search users
// @Description Case-insensitive username search
// @Tags users
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results"
// @Success 200 {array} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /users/search [get]
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := c.Query("q")
	limit := c.QueryInt("limit", 20)

	users, err := s.userService.SearchUsers(ctx, query, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

// BlockUser handles POST /api/admin/users/:id/block (admin only)
func (s *Server) BlockUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	adminID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.SetBlocked(ctx, adminID, targetID, true); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User blocked"})
}

// UnblockUser handles DELETE /api/admin/users/:id/block (admin only)
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	adminID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.SetBlocked(ctx, adminID, targetID, false); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User unblocked"})
}
