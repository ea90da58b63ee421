package seed

import (
	"log"
	"math/rand"
	"time"

	"wayfarer/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumJournals int
	ShouldClean bool
}

// Seed populates the database with a demo social mesh: users following
// each other, journals with media, and likes, comments, and shares spread
// over the last three months. Counter columns are recomputed at the end so
// they match the seeded engagement rows.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d journals...", opts.NumUsers, opts.NumJournals)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumJournals <= 0 {
		opts.NumJournals = 100
	}

	f := NewFactory(db, SeedOptions{MaxDays: 90, SkipBcrypt: true})
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	// Each user follows roughly a quarter of the others.
	for _, u := range users {
		for _, other := range users {
			if u.ID == other.ID || r.Intn(4) != 0 {
				continue
			}
			if err := f.CreateFollow(u, other); err != nil {
				return err
			}
		}
	}

	for i := 0; i < opts.NumJournals; i++ {
		author := users[r.Intn(len(users))]
		j, err := f.CreateJournal(author)
		if err != nil {
			return err
		}

		// Engagement from random users: likes, comments with the
		// occasional reply, and shares.
		for _, other := range users {
			if r.Intn(3) == 0 {
				if err := f.CreateLike(other, j); err != nil {
					return err
				}
			}
			if r.Intn(6) == 0 {
				c, err := f.CreateComment(other, j, nil)
				if err != nil {
					return err
				}
				if r.Intn(3) == 0 {
					replier := users[r.Intn(len(users))]
					if _, err := f.CreateComment(replier, j, c); err != nil {
						return err
					}
				}
			}
			if other.ID != j.UserID && r.Intn(10) == 0 {
				if err := f.CreateShare(other, j); err != nil {
					return err
				}
			}
		}
	}

	if err := refreshCounters(db); err != nil {
		return err
	}

	log.Println("Seeding complete")
	return nil
}

// refreshCounters recomputes the persisted like and top-level comment
// counters from the seeded rows.
func refreshCounters(db *gorm.DB) error {
	if err := db.Exec(`
		UPDATE journals SET like_count = (
			SELECT COUNT(*) FROM likes WHERE likes.journal_id = journals.id
		)`).Error; err != nil {
		return err
	}
	return db.Exec(`
		UPDATE journals SET comment_count = (
			SELECT COUNT(*) FROM comments
			WHERE comments.journal_id = journals.id
			  AND comments.parent_id IS NULL
			  AND comments.deleted_at IS NULL
		)`).Error
}

// clearData removes seeded rows in dependency order.
func clearData(db *gorm.DB) error {
	for _, table := range []string{"shares", "likes", "comments", "media", "journals", "follows", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
