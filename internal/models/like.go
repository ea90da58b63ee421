package models

import (
	"time"
)

// Like represents a user's like on a journal.
// The combination of UserID and JournalID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_journal" json:"user_id"`
	JournalID uint      `gorm:"not null;uniqueIndex:idx_like_user_journal" json:"journal_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Journal Journal `gorm:"foreignKey:JournalID" json:"journal,omitempty"`
}
