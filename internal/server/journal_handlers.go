package server

import (
	"wayfarer/internal/models"
	"wayfarer/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateJournal handles POST /api/journals (protected)
// @Summary Create journal
// @Description Create a new travel journal entry with optional media attachments
// @Tags journals
// @Accept json
// @Produce json
// @Param request body object{title=string,content=string,media_urls=[]string} true "Journal entry"
// @Success 201 {object} models.Journal
// @Failure 400 {object} models.ErrorResponse
// @Router /journals [post]
func (s *Server) CreateJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title     string   `json:"title"`
		Content   string   `json:"content"`
		MediaURLs []string `json:"media_urls"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	journal, err := s.journalService.CreateJournal(ctx, service.CreateJournalInput{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(journal)
}

// GetJournal handles GET /api/journals/:id (public)
// @Summary Get journal
// @Description Fetch a single journal with live counters; is_liked reflects the caller when authenticated
// @Tags journals
// @Produce json
// @Param id path int true "Journal ID"
// @Success 200 {object} models.Journal
// @Failure 404 {object} models.ErrorResponse
// @Router /journals/{id} [get]
func (s *Server) GetJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()

	journalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	currentUserID, _ := s.optionalUserID(c)

	journal, err := s.journalService.GetJournal(ctx, journalID, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(journal)
}

// GetUserJournals handles GET /api/users/:id/journals (protected)
func (s *Server) GetUserJournals(c *fiber.Ctx) error {
	ctx := c.UserContext()
	currentUserID := c.Locals("userID").(uint)

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)
	journals, err := s.journalService.ListByUser(ctx, userID, p.Limit, p.Offset, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(journals)
}

// UpdateJournal handles PUT /api/journals/:id (owner only)
func (s *Server) UpdateJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	journalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	journal, err := s.journalService.UpdateJournal(ctx, service.UpdateJournalInput{
		UserID:    userID,
		JournalID: journalID,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(journal)
}

// DeleteJournal handles DELETE /api/journals/:id (owner or admin)
func (s *Server) DeleteJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	journalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.journalService.DeleteJournal(ctx, service.DeleteJournalInput{
		UserID:    userID,
		JournalID: journalID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// LikeJournal handles POST /api/journals/:id/like (protected)
// @Summary Like journal
// @Description Like a journal; liking twice is a no-op
// @Tags journals
// @Produce json
// @Param id path int true "Journal ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /journals/{id}/like [post]
func (s *Server) LikeJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	journalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.journalService.LikeJournal(ctx, userID, journalID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Journal liked"})
}

// UnlikeJournal handles DELETE /api/journals/:id/like (protected)
func (s *Server) UnlikeJournal(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	journalID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.journalService.UnlikeJournal(ctx, userID, journalID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Journal unliked"})
}
