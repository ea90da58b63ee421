package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow (protected)
// @Summary Follow user
// @Description Follow another user; following twice is a no-op
// @Tags follows
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	followerID := c.Locals("userID").(uint)

	followedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.FollowUser(ctx, followerID, followedID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Now following"})
}

// UnfollowUser handles DELETE /api/users/:id/follow (protected)
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	followerID := c.Locals("userID").(uint)

	followedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.UnfollowUser(ctx, followerID, followedID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed"})
}

// GetFollowers handles GET /api/users/:id/followers (protected)
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.followService.Followers(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following (protected)
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Following(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(following)
}

// GetFollowSuggestions handles GET /api/users/suggestions (protected)
func (s *Server) GetFollowSuggestions(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	limit := c.QueryInt("limit", 10)
	suggestions, err := s.followService.Suggestions(ctx, userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(suggestions)
}
