// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"wayfarer/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tune factory behavior.
type SeedOptions struct {
	// MaxDays spreads journal creation times over this many days back.
	MaxDays int
	// SkipBcrypt stores a plaintext password to speed up large seeds.
	SkipBcrypt bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateJournal constructs and persists a sample journal with a creation
// time spread over the configured window, plus zero to three media items.
func (f *Factory) CreateJournal(user *models.User, overrides ...func(*models.Journal)) (*models.Journal, error) {
	journal := &models.Journal{
		Title:   fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Content: gofakeit.Paragraph(2, 4, 8, "\n"),
		UserID:  user.ID,
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	journal.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for i := 0; i < f.rand.Intn(4); i++ {
		journal.Media = append(journal.Media, models.Media{
			URL: fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		})
	}

	for _, override := range overrides {
		override(journal)
	}

	if err := f.db.Create(journal).Error; err != nil {
		return nil, err
	}
	return journal, nil
}

// CreateComment persists a comment; pass a parent to create a reply.
func (f *Factory) CreateComment(user *models.User, journal *models.Journal, parent *models.Comment) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   gofakeit.Sentence(12),
		UserID:    user.ID,
		JournalID: journal.ID,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like edge; duplicates are ignored.
func (f *Factory) CreateLike(user *models.User, journal *models.Journal) error {
	return f.db.Exec(
		`INSERT INTO likes (user_id, journal_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, journal_id) DO NOTHING`,
		user.ID, journal.ID,
	).Error
}

// CreateShare persists a share edge; duplicates are ignored.
func (f *Factory) CreateShare(user *models.User, journal *models.Journal) error {
	return f.db.Exec(
		`INSERT INTO shares (user_id, journal_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, journal_id) DO NOTHING`,
		user.ID, journal.ID,
	).Error
}

// CreateFollow persists a follow edge; duplicates and self-follows are ignored.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	if follower.ID == followed.ID {
		return nil
	}
	return f.db.Exec(
		`INSERT INTO follows (follower_id, followed_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (follower_id, followed_id) DO NOTHING`,
		follower.ID, followed.ID,
	).Error
}
