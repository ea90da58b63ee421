package service

import (
	"context"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"
)

type ShareService struct {
	shareRepo   repository.ShareRepository
	journalRepo repository.JournalRepository
}

func NewShareService(
	shareRepo repository.ShareRepository,
	journalRepo repository.JournalRepository,
) *ShareService {
	return &ShareService{
		shareRepo:   shareRepo,
		journalRepo: journalRepo,
	}
}

// ShareJournal records a share. Sharing the same journal twice is a no-op.
func (s *ShareService) ShareJournal(ctx context.Context, userID, journalID uint) error {
	if _, err := s.journalRepo.GetByID(ctx, journalID, 0); err != nil {
		return models.NewNotFoundError("Journal", journalID)
	}
	// Sharing your own journal is allowed; it shows up twice on the
	// profile feed, once as owned and once as shared.
	if _, err := s.shareRepo.Create(ctx, userID, journalID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *ShareService) UnshareJournal(ctx context.Context, userID, journalID uint) error {
	exists, err := s.shareRepo.Exists(ctx, userID, journalID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !exists {
		return models.NewNotFoundError("Share", journalID)
	}
	if err := s.shareRepo.Delete(ctx, userID, journalID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
