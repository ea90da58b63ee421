package server

import (
	"github.com/gofiber/fiber/v2"
)

// ShareJournal handles POST /api/journals/:id/share (protected)
// @Summary Share journal
// @Description Re-broadcast a journal to your followers; sharing twice is a no-op
// @Tags shares
// @Produce json
// @Param id path int true "Journal ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /journals/{id}/share [post]
func (s *Server) ShareJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	journalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.shareService.ShareJournal(ctx, userID, journalID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Journal shared"})
}

// UnshareJournal handles DELETE /api/journals/:id/share (protected)
func (s *Server) UnshareJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	journalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.shareService.UnshareJournal(ctx, userID, journalID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Journal unshared"})
}
