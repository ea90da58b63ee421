// Package service implements the application's business logic.
package service

import (
	"context"
	"strings"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"
	"wayfarer/internal/validation"
)

type JournalService struct {
	journalRepo repository.JournalRepository
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type CreateJournalInput struct {
	UserID    uint
	Title     string
	Content   string
	MediaURLs []string
}

type UpdateJournalInput struct {
	UserID    uint
	JournalID uint
	Title     string
	Content   string
}

type DeleteJournalInput struct {
	UserID    uint
	JournalID uint
}

func NewJournalService(
	journalRepo repository.JournalRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		isAdmin:     isAdmin,
	}
}

const maxContentLen = 50000

func (s *JournalService) CreateJournal(ctx context.Context, in CreateJournalInput) (*models.Journal, error) {
	if err := validation.ValidateJournalTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}
	if len(in.MediaURLs) > models.MaxMediaPerJournal {
		return nil, models.NewValidationError("Too many media attachments (max 20)")
	}
	for _, u := range in.MediaURLs {
		if err := validation.ValidateMediaURL(u); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}

	journal := &models.Journal{
		Title:   strings.TrimSpace(in.Title),
		Content: in.Content,
		UserID:  in.UserID,
	}
	for _, u := range in.MediaURLs {
		journal.Media = append(journal.Media, models.Media{URL: u})
	}

	if err := s.journalRepo.Create(ctx, journal); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.journalRepo.GetByID(ctx, journal.ID, in.UserID)
}

func (s *JournalService) GetJournal(ctx context.Context, journalID, currentUserID uint) (*models.Journal, error) {
	journal, err := s.journalRepo.GetByID(ctx, journalID, currentUserID)
	if err != nil {
		return nil, models.NewNotFoundError("Journal", journalID)
	}
	return journal, nil
}

func (s *JournalService) ListByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Journal, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	journals, err := s.journalRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return journals, nil
}

func (s *JournalService) UpdateJournal(ctx context.Context, in UpdateJournalInput) (*models.Journal, error) {
	journal, err := s.journalRepo.GetByID(ctx, in.JournalID, in.UserID)
	if err != nil {
		return nil, models.NewNotFoundError("Journal", in.JournalID)
	}
	if journal.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own journals")
	}

	if in.Title != "" {
		if err := validation.ValidateJournalTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		journal.Title = strings.TrimSpace(in.Title)
	}
	if in.Content != "" {
		if len(in.Content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 50000 characters)")
		}
		journal.Content = in.Content
	}

	if err := s.journalRepo.Update(ctx, journal); err != nil {
		return nil, models.NewInternalError(err)
	}
	return journal, nil
}

// DeleteJournal removes a journal. Admins may delete any journal; everyone
// else only their own.
func (s *JournalService) DeleteJournal(ctx context.Context, in DeleteJournalInput) error {
	journal, err := s.journalRepo.GetByID(ctx, in.JournalID, 0)
	if err != nil {
		return models.NewNotFoundError("Journal", in.JournalID)
	}

	if journal.UserID != in.UserID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("You can only delete your own journals")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own journals")
		}
	}

	return s.journalRepo.Delete(ctx, in.JournalID)
}

func (s *JournalService) LikeJournal(ctx context.Context, userID, journalID uint) error {
	if _, err := s.journalRepo.GetByID(ctx, journalID, 0); err != nil {
		return models.NewNotFoundError("Journal", journalID)
	}
	if err := s.journalRepo.Like(ctx, userID, journalID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *JournalService) UnlikeJournal(ctx context.Context, userID, journalID uint) error {
	if _, err := s.journalRepo.GetByID(ctx, journalID, 0); err != nil {
		return models.NewNotFoundError("Journal", journalID)
	}
	if err := s.journalRepo.Unlike(ctx, userID, journalID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
