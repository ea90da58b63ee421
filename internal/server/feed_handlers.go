package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetOwnFeed handles GET /api/feed (protected)
// @Summary Own feed
// @Description The caller's journals, newest first, with engagement scores attached
// @Tags feeds
// @Produce json
// @Success 200 {array} models.Journal
// @Router /feed [get]
func (s *Server) GetOwnFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.OwnFeed(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(feed)
}

// GetSocialFeed handles GET /api/feed/social (protected)
// @Summary Social feed
// @Description Journals authored or shared by followed users, ranked by engagement
// @Tags feeds
// @Produce json
// @Success 200 {array} models.Journal
// @Router /feed/social [get]
func (s *Server) GetSocialFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.SocialFeed(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(feed)
}

// GetExploreFeed handles GET /api/feed/explore (public)
// @Summary Explore feed
// @Description Network-wide journals ranked by engagement; personalized when authenticated
// @Tags feeds
// @Produce json
// @Success 200 {array} models.Journal
// @Router /feed/explore [get]
func (s *Server) GetExploreFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID, _ := s.optionalUserID(c)

	feed, err := s.feedService.ExploreFeed(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(feed)
}

// GetProfileFeed handles GET /api/users/:id/feed (protected)
// @Summary Profile feed
// @Description A user's owned and shared journals ordered by display date
// @Tags feeds
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Journal
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/feed [get]
func (s *Server) GetProfileFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	currentUserID := c.Locals("userID").(uint)

	profileUserID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	feed, err := s.feedService.ProfileFeed(ctx, profileUserID, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(feed)
}
