package repository

import (
	"context"
	"testing"

	"wayfarer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "wanda", Email: "wanda@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "wanda", got.Username)

	got, err = repo.GetByUsername(ctx, "wanda")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	got, err = repo.GetByEmail(ctx, "wanda@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	// Unknown lookups return nil without error.
	got, err = repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_DuplicateIsValidationError(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "dup", Email: "dup@example.com", Password: "x"}))

	err := repo.Create(ctx, &models.User{Username: "dup", Email: "other@example.com", Password: "x"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_Suggestions(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	blocked := createTestUser(t, db, "blocked")
	require.NoError(t, users.SetBlocked(ctx, blocked.ID, true))

	_, err := follows.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	suggestions, err := users.Suggestions(ctx, alice.ID, 10)
	require.NoError(t, err)

	ids := make([]uint, 0, len(suggestions))
	for _, u := range suggestions {
		ids = append(ids, u.ID)
	}
	assert.Contains(t, ids, carol.ID)
	assert.NotContains(t, ids, alice.ID, "self is never suggested")
	assert.NotContains(t, ids, bob.ID, "already followed users are not suggested")
	assert.NotContains(t, ids, blocked.ID, "blocked users are not suggested")
}

func TestUserRepository_Search(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "traveler_jo")
	createTestUser(t, db, "jojo_remote")
	createTestUser(t, db, "homebody")

	found, err := repo.Search(ctx, "JO", 10)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestUserRepository_SetBlocked(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "nomad")
	require.NoError(t, repo.SetBlocked(ctx, user.ID, true))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)

	err = repo.SetBlocked(ctx, 12345, true)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
