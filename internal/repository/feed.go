package repository

import (
	"context"

	"wayfarer/internal/models"

	"gorm.io/gorm"
)

// FeedRepository retrieves candidate sets for feed composition. Candidates
// come back unranked; scoring and ordering happen in the service layer.
type FeedRepository interface {
	OwnedJournals(ctx context.Context, userID uint, currentUserID uint) ([]models.Journal, error)
	JournalsByAuthors(ctx context.Context, authorIDs []uint, currentUserID uint) ([]models.Journal, error)
	JournalsByIDs(ctx context.Context, ids []uint, currentUserID uint) ([]models.Journal, error)
	AllJournals(ctx context.Context, limit int, currentUserID uint) ([]models.Journal, error)
	SharedJournalIDs(ctx context.Context, userIDs []uint) ([]uint, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) candidates(ctx context.Context, currentUserID uint) *gorm.DB {
	return applyJournalDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Media")
}

func (r *feedRepository) OwnedJournals(ctx context.Context, userID uint, currentUserID uint) ([]models.Journal, error) {
	var journals []models.Journal
	err := r.candidates(ctx, currentUserID).
		Where("user_id = ?", userID).
		Find(&journals).Error
	return journals, err
}

func (r *feedRepository) JournalsByAuthors(ctx context.Context, authorIDs []uint, currentUserID uint) ([]models.Journal, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var journals []models.Journal
	err := r.candidates(ctx, currentUserID).
		Where("user_id IN ?", authorIDs).
		Find(&journals).Error
	return journals, err
}

func (r *feedRepository) JournalsByIDs(ctx context.Context, ids []uint, currentUserID uint) ([]models.Journal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var journals []models.Journal
	err := r.candidates(ctx, currentUserID).
		Where("journals.id IN ?", ids).
		Find(&journals).Error
	return journals, err
}

// AllJournals returns the newest entries across the whole network, skipping
// blocked authors. The limit caps the candidate set before ranking.
func (r *feedRepository) AllJournals(ctx context.Context, limit int, currentUserID uint) ([]models.Journal, error) {
	var journals []models.Journal
	err := r.candidates(ctx, currentUserID).
		Joins("JOIN users ON users.id = journals.user_id").
		Where("users.is_blocked = ?", false).
		Order("journals.created_at DESC").
		Limit(limit).
		Find(&journals).Error
	return journals, err
}

// SharedJournalIDs returns the distinct journal IDs shared by any of the
// given users.
func (r *feedRepository) SharedJournalIDs(ctx context.Context, userIDs []uint) ([]uint, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Share{}).
		Distinct("journal_id").
		Where("user_id IN ?", userIDs).
		Pluck("journal_id", &ids).Error
	return ids, err
}
