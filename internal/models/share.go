package models

import (
	"time"
)

// Share represents a user re-broadcasting another user's journal to their
// own followers. The combination of UserID and JournalID must be unique.
type Share struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_share_user_journal" json:"user_id"`
	JournalID uint      `gorm:"not null;uniqueIndex:idx_share_user_journal" json:"journal_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Journal Journal `gorm:"foreignKey:JournalID" json:"journal,omitempty"`
}
