package repository

import (
	"context"

	"wayfarer/internal/cache"
	"wayfarer/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByJournal(ctx context.Context, journalID uint) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	Depth(ctx context.Context, parentID uint) (int, error)
}

type commentRepository struct {
	db       *gorm.DB
	journals JournalRepository
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB, journals JournalRepository) CommentRepository {
	return &commentRepository{db: db, journals: journals}
}

// Create inserts the comment and, for top-level comments, recomputes the
// journal's cached comment counter in the same transaction.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if comment.ParentID == nil {
			r.journals.RefreshCommentCount(ctx, tx, comment.JournalID)
		}
		return nil
	})
	if err == nil {
		cache.Invalidate(ctx, cache.JournalKey(comment.JournalID))
	}
	return err
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByJournal returns the journal's top-level comments, newest first, with
// replies attached as a tree. Reply expansion stops at models.MaxReplyDepth.
func (r *commentRepository) ListByJournal(ctx context.Context, journalID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("journal_id = ?", journalID).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return buildCommentTree(comments), nil
}

// buildCommentTree links replies to their parents and returns top-level
// comments. Replies under a parent are ordered oldest first. Comments
// deeper than MaxReplyDepth stay in storage but are not attached.
func buildCommentTree(comments []*models.Comment) []*models.Comment {
	byID := make(map[uint]*models.Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}

	depth := func(c *models.Comment) int {
		d := 0
		for c.ParentID != nil {
			parent, ok := byID[*c.ParentID]
			if !ok {
				break
			}
			d++
			c = parent
		}
		return d
	}

	var roots []*models.Comment
	// Walk oldest first so replies append in chronological order.
	for i := len(comments) - 1; i >= 0; i-- {
		c := comments[i]
		if c.ParentID == nil {
			continue
		}
		parent, ok := byID[*c.ParentID]
		if !ok || depth(c) > models.MaxReplyDepth {
			continue
		}
		parent.Replies = append(parent.Replies, c)
	}
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
		}
	}
	return roots
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete soft-deletes the comment and its entire reply subtree, then
// recomputes the journal's comment counter when a top-level comment was
// removed.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []uint{id}
		frontier := []uint{id}
		for len(frontier) > 0 {
			var children []uint
			if err := tx.Model(&models.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}

		if err := tx.Delete(&models.Comment{}, ids).Error; err != nil {
			return err
		}
		if comment.ParentID == nil {
			r.journals.RefreshCommentCount(ctx, tx, comment.JournalID)
		}
		return nil
	})
	if err == nil {
		cache.Invalidate(ctx, cache.JournalKey(comment.JournalID))
	}
	return err
}

// Depth returns the nesting depth a reply to parentID would have. A reply
// to a top-level comment has depth 1.
func (r *commentRepository) Depth(ctx context.Context, parentID uint) (int, error) {
	depth := 0
	current := parentID
	for {
		var parent models.Comment
		if err := r.db.WithContext(ctx).Select("id", "parent_id").First(&parent, current).Error; err != nil {
			return 0, err
		}
		depth++
		if parent.ParentID == nil {
			return depth, nil
		}
		current = *parent.ParentID
	}
}
