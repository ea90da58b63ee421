package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a journal. A nil ParentID marks a
// top-level comment; replies reference their parent, forming a tree.
// Deleting a comment cascades to its replies.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	JournalID uint           `gorm:"not null;index" json:"journal_id"`
	ParentID  *uint          `gorm:"index" json:"parent_id,omitempty"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Replies   []*Comment     `gorm:"-" json:"replies,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MaxReplyDepth caps recursive reply expansion when serializing a comment
// tree. Deeper replies exist in storage but are not expanded past the cap.
const MaxReplyDepth = 10
