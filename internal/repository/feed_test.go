package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRepository_OwnedJournals(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestJournal(t, db, alice.ID, "mine 1")
	createTestJournal(t, db, alice.ID, "mine 2")
	createTestJournal(t, db, bob.ID, "not mine")

	journals, err := repo.OwnedJournals(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, journals, 2)
	for _, j := range journals {
		assert.Equal(t, alice.ID, j.UserID)
	}
}

func TestFeedRepository_JournalsByAuthors(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	createTestJournal(t, db, bob.ID, "bob 1")
	createTestJournal(t, db, carol.ID, "carol 1")
	createTestJournal(t, db, alice.ID, "alice 1")

	journals, err := repo.JournalsByAuthors(ctx, []uint{bob.ID, carol.ID}, alice.ID)
	require.NoError(t, err)
	assert.Len(t, journals, 2)

	// Empty author set short-circuits.
	journals, err = repo.JournalsByAuthors(ctx, nil, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, journals)
}

func TestFeedRepository_SharedJournalIDs(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	feed := NewFeedRepository(db)
	shares := NewShareRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	j1 := createTestJournal(t, db, alice.ID, "shared once")
	j2 := createTestJournal(t, db, alice.ID, "shared twice")
	createTestJournal(t, db, alice.ID, "never shared")

	_, err := shares.Create(ctx, bob.ID, j1.ID)
	require.NoError(t, err)
	_, err = shares.Create(ctx, bob.ID, j2.ID)
	require.NoError(t, err)
	_, err = shares.Create(ctx, carol.ID, j2.ID)
	require.NoError(t, err)

	ids, err := feed.SharedJournalIDs(ctx, []uint{bob.ID, carol.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{j1.ID, j2.ID}, ids)

	ids, err = feed.SharedJournalIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFeedRepository_AllJournalsSkipsBlockedAuthors(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	feed := NewFeedRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	spammer := createTestUser(t, db, "spammer")
	createTestJournal(t, db, alice.ID, "real")
	createTestJournal(t, db, spammer.ID, "spam")
	require.NoError(t, users.SetBlocked(ctx, spammer.ID, true))

	journals, err := feed.AllJournals(ctx, 50, alice.ID)
	require.NoError(t, err)
	require.Len(t, journals, 1)
	assert.Equal(t, "real", journals[0].Title)
}

func TestFeedRepository_AnnotatesLikedAndShareCount(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	feed := NewFeedRepository(db)
	journals := NewJournalRepository(db)
	shares := NewShareRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	j := createTestJournal(t, db, bob.ID, "annotated")

	require.NoError(t, journals.Like(ctx, alice.ID, j.ID))
	_, err := shares.Create(ctx, alice.ID, j.ID)
	require.NoError(t, err)

	got, err := feed.JournalsByAuthors(ctx, []uint{bob.ID}, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Liked)
	assert.Equal(t, 1, got[0].ShareCount)
	assert.Equal(t, 1, got[0].LikeCount)
	assert.Equal(t, bob.ID, got[0].User.ID)
}
