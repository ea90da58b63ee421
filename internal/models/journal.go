package models

import (
	"time"

	"gorm.io/gorm"
)

// Journal represents a travel journal entry.
//
// LikeCount and CommentCount are persisted caches maintained by the
// repository layer: every like or top-level comment mutation recomputes
// them inside the same transaction. CommentCount counts parent-less
// comments only; replies are excluded.
type Journal struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	LikeCount int    `gorm:"not null;default:0" json:"like_count"`
	// CommentCount caches the number of top-level comments.
	CommentCount int            `gorm:"not null;default:0" json:"comment_count"`
	Media        []Media        `gorm:"foreignKey:JournalID" json:"media,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// ShareCount is not persisted; annotated at query time during feed composition.
	ShareCount int `gorm:"->;-:migration" json:"share_count"`
	// EngagementScore is computed per request by the ranking package.
	EngagementScore float64 `gorm:"-" json:"engagement_score"`
	// Liked indicates whether the requesting user liked this journal (computed).
	Liked bool `gorm:"->;-:migration" json:"is_liked"`
	// SharedByFollowed indicates whether someone the requesting user follows
	// shared this journal; SharedBy identifies the most recent such sharer.
	SharedByFollowed bool  `gorm:"-" json:"is_shared"`
	SharedBy         *User `gorm:"-" json:"shared_by,omitempty"`
	// DisplayDate orders the profile feed: the share time when the entry
	// was reached via a share, otherwise the creation time.
	DisplayDate *time.Time `gorm:"-" json:"display_date,omitempty"`
}

// Media is a file attachment on a journal. Only the URL is stored; the
// binary itself lives in external storage.
type Media struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	JournalID  uint      `gorm:"not null;index" json:"journal_id"`
	URL        string    `gorm:"not null" json:"url"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// MaxMediaPerJournal limits the number of attachments on one journal.
const MaxMediaPerJournal = 20
