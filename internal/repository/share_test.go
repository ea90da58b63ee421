package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareRepository_ExistsAndDelete(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewShareRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	j := createTestJournal(t, db, bob.ID, "verona")

	exists, err := repo.Exists(ctx, alice.ID, j.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, alice.ID, j.ID)
	require.NoError(t, err)

	exists, err = repo.Exists(ctx, alice.ID, j.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	list, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, alice.ID, j.ID))
	exists, err = repo.Exists(ctx, alice.ID, j.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestShareRepository_SharedJournalIDsByUsers(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewShareRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	author := createTestUser(t, db, "author")
	j1 := createTestJournal(t, db, author.ID, "one")
	j2 := createTestJournal(t, db, author.ID, "two")

	_, err := repo.Create(ctx, alice.ID, j1.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, bob.ID, j2.ID)
	require.NoError(t, err)

	sharers, err := repo.SharedJournalIDsByUsers(ctx, []uint{alice.ID, bob.ID}, []uint{j1.ID, j2.ID})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, sharers[j1.ID])
	assert.Equal(t, bob.ID, sharers[j2.ID])

	// Journals outside the requested set are not annotated.
	sharers, err = repo.SharedJournalIDsByUsers(ctx, []uint{alice.ID}, []uint{j2.ID})
	require.NoError(t, err)
	assert.Empty(t, sharers)
}
