// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"wayfarer/internal/cache"
	"wayfarer/internal/models"
	"wayfarer/internal/observability"

	"gorm.io/gorm"
)

// JournalRepository defines the interface for journal data operations
type JournalRepository interface {
	Create(ctx context.Context, journal *models.Journal) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Journal, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Journal, error)
	Update(ctx context.Context, journal *models.Journal) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, journalID uint) (bool, error)
	GetLikedJournalIDs(ctx context.Context, userID uint, journalIDs []uint) ([]uint, error)
	Like(ctx context.Context, userID, journalID uint) error
	Unlike(ctx context.Context, userID, journalID uint) error
	RefreshCommentCount(ctx context.Context, tx *gorm.DB, journalID uint)
}

// journalRepository implements JournalRepository
type journalRepository struct {
	db     *gorm.DB
	logger *observability.RepoLogger
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{
		db:     db,
		logger: observability.NewRepoLogger("journals"),
	}
}

func (r *journalRepository) Create(ctx context.Context, journal *models.Journal) error {
	return r.db.WithContext(ctx).Create(journal).Error
}

func (r *journalRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Journal, error) {
	var journal models.Journal
	key := cache.JournalKey(id)

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, key, &journal, cache.JournalTTL, func() error {
			return applyJournalDetails(r.db.WithContext(ctx), 0).
				Preload("User").
				Preload("Media").
				First(&journal, id).Error
		})
	} else {
		err = applyJournalDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("Media").
			First(&journal, id).Error
	}

	if err != nil {
		return nil, err
	}
	return &journal, nil
}

func (r *journalRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Journal, error) {
	var journals []models.Journal
	err := applyJournalDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Media").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&journals).Error
	return journals, err
}

func (r *journalRepository) Update(ctx context.Context, journal *models.Journal) error {
	if err := r.db.WithContext(ctx).Save(journal).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.JournalKey(journal.ID))
	return nil
}

func (r *journalRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Journal{}, id).Error; err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.JournalKey(id))
	return nil
}

func (r *journalRepository) IsLiked(ctx context.Context, userID, journalID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND journal_id = ?", userID, journalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *journalRepository) GetLikedJournalIDs(ctx context.Context, userID uint, journalIDs []uint) ([]uint, error) {
	if len(journalIDs) == 0 {
		return nil, nil
	}
	var likedIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND journal_id IN ?", userID, journalIDs).
		Pluck("journal_id", &likedIDs).Error
	return likedIDs, err
}

func (r *journalRepository) Like(ctx context.Context, userID, journalID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Use INSERT ... ON CONFLICT DO NOTHING to handle race conditions.
		// This is atomic and prevents duplicate key errors.
		result := tx.Exec(
			`INSERT INTO likes (user_id, journal_id, created_at)
			 VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT (user_id, journal_id) DO NOTHING`,
			userID, journalID,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Already liked, nothing to recount.
			return nil
		}
		r.refreshLikeCount(ctx, tx, journalID)
		return nil
	})
	if err == nil {
		cache.Invalidate(ctx, cache.JournalKey(journalID))
	}
	return err
}

func (r *journalRepository) Unlike(ctx context.Context, userID, journalID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().
			Where("user_id = ? AND journal_id = ?", userID, journalID).
			Delete(&models.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		r.refreshLikeCount(ctx, tx, journalID)
		return nil
	})
	if err == nil {
		cache.Invalidate(ctx, cache.JournalKey(journalID))
	}
	return err
}

// refreshLikeCount recomputes the cached like counter from the likes table.
// A recount failure is logged as an anomaly but does not roll back the
// mutation that triggered it; the counter stays stale until the next
// successful recount.
func (r *journalRepository) refreshLikeCount(ctx context.Context, tx *gorm.DB, journalID uint) {
	var count int64
	err := tx.Model(&models.Like{}).
		Where("journal_id = ?", journalID).
		Count(&count).Error
	if err == nil {
		err = tx.Model(&models.Journal{}).
			Where("id = ?", journalID).
			UpdateColumn("like_count", count).Error
	}
	if err != nil {
		r.logger.LogAnomaly(ctx, err, "like_count", journalID)
	}
}

// RefreshCommentCount recomputes the cached top-level comment counter.
// Replies are excluded. Failure is logged as an anomaly without rolling
// back the surrounding transaction.
func (r *journalRepository) RefreshCommentCount(ctx context.Context, tx *gorm.DB, journalID uint) {
	var count int64
	err := tx.Model(&models.Comment{}).
		Where("journal_id = ? AND parent_id IS NULL", journalID).
		Count(&count).Error
	if err == nil {
		err = tx.Model(&models.Journal{}).
			Where("id = ?", journalID).
			UpdateColumn("comment_count", count).Error
	}
	if err != nil {
		r.logger.LogAnomaly(ctx, err, "comment_count", journalID)
	}
}

// applyJournalDetails adds subqueries to fetch the share count and liked
// status in a single query. Like and comment counts are read from the
// persisted counter columns.
func applyJournalDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "journals.*, " +
		"(SELECT COUNT(*) FROM shares WHERE shares.journal_id = journals.id) as share_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.journal_id = journals.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}
