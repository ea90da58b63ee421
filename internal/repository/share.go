package repository

import (
	"context"

	"wayfarer/internal/models"

	"gorm.io/gorm"
)

// ShareRepository defines the interface for share data operations
type ShareRepository interface {
	Create(ctx context.Context, userID, journalID uint) (bool, error)
	Delete(ctx context.Context, userID, journalID uint) error
	Exists(ctx context.Context, userID, journalID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Share, error)
	SharedJournalIDsByUsers(ctx context.Context, userIDs []uint, journalIDs []uint) (map[uint]uint, error)
}

type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new ShareRepository
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepository{db: db}
}

// Create records a share. Returns false when the user already shared the
// journal; the insert is a no-op in that case.
func (r *shareRepository) Create(ctx context.Context, userID, journalID uint) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO shares (user_id, journal_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, journal_id) DO NOTHING`,
		userID, journalID,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *shareRepository) Delete(ctx context.Context, userID, journalID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND journal_id = ?", userID, journalID).
		Delete(&models.Share{}).Error
}

func (r *shareRepository) Exists(ctx context.Context, userID, journalID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Share{}).
		Where("user_id = ? AND journal_id = ?", userID, journalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *shareRepository) ListByUser(ctx context.Context, userID uint) ([]models.Share, error) {
	var shares []models.Share
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&shares).Error
	return shares, err
}

// SharedJournalIDsByUsers returns, for each journal in journalIDs shared by
// any of userIDs, the sharer with the most recent share. Used to annotate
// social feed items with who surfaced them.
func (r *shareRepository) SharedJournalIDsByUsers(ctx context.Context, userIDs []uint, journalIDs []uint) (map[uint]uint, error) {
	if len(userIDs) == 0 || len(journalIDs) == 0 {
		return map[uint]uint{}, nil
	}

	var shares []models.Share
	err := r.db.WithContext(ctx).
		Where("user_id IN ? AND journal_id IN ?", userIDs, journalIDs).
		Order("created_at ASC").
		Find(&shares).Error
	if err != nil {
		return nil, err
	}

	// Later shares overwrite earlier ones, leaving the most recent sharer.
	sharerByJournal := make(map[uint]uint, len(shares))
	for _, s := range shares {
		sharerByJournal[s.JournalID] = s.UserID
	}
	return sharerByJournal, nil
}
