package seed

import (
	"testing"

	"wayfarer/internal/database"
	"wayfarer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed_CreatesMesh(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 5, NumJournals: 10}))

	var userCount, journalCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Journal{}).Count(&journalCount).Error)
	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(10), journalCount)
}

func TestSeed_CountersMatchRows(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 6, NumJournals: 12}))

	var journals []models.Journal
	require.NoError(t, db.Find(&journals).Error)

	for _, j := range journals {
		var likes, topLevelComments int64
		require.NoError(t, db.Model(&models.Like{}).Where("journal_id = ?", j.ID).Count(&likes).Error)
		require.NoError(t, db.Model(&models.Comment{}).
			Where("journal_id = ? AND parent_id IS NULL", j.ID).
			Count(&topLevelComments).Error)

		assert.Equal(t, int(likes), j.LikeCount, "journal %d like_count", j.ID)
		assert.Equal(t, int(topLevelComments), j.CommentCount, "journal %d comment_count", j.ID)
	}
}

func TestSeed_CleanRemovesPreviousData(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 3, NumJournals: 5}))
	require.NoError(t, Seed(db, Options{NumUsers: 4, NumJournals: 6, ShouldClean: true}))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(4), userCount)
}

func TestFactory_FollowIgnoresSelfAndDuplicates(t *testing.T) {
	db := setupTestDB(t)
	f := NewFactory(db, SeedOptions{SkipBcrypt: true})

	a, err := f.CreateUser()
	require.NoError(t, err)
	b, err := f.CreateUser()
	require.NoError(t, err)

	require.NoError(t, f.CreateFollow(a, a))
	require.NoError(t, f.CreateFollow(a, b))
	require.NoError(t, f.CreateFollow(a, b))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
