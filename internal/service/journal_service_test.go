package service

import (
	"context"
	"strings"
	"testing"

	"wayfarer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalService_CreateJournal_Validation(t *testing.T) {
	t.Parallel()

	svc := NewJournalService(noopJournalRepo(), nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateJournalInput
	}{
		{
			name:  "empty title",
			input: CreateJournalInput{UserID: 1, Content: "some content"},
		},
		{
			name:  "whitespace title",
			input: CreateJournalInput{UserID: 1, Title: "   ", Content: "some content"},
		},
		{
			name:  "title too long",
			input: CreateJournalInput{UserID: 1, Title: strings.Repeat("x", 256), Content: "c"},
		},
		{
			name:  "empty content",
			input: CreateJournalInput{UserID: 1, Title: "Trip to Kyoto"},
		},
		{
			name:  "content too long",
			input: CreateJournalInput{UserID: 1, Title: "T", Content: strings.Repeat("x", 50001)},
		},
		{
			name: "too many media attachments",
			input: CreateJournalInput{
				UserID: 1, Title: "T", Content: "c",
				MediaURLs: make21URLs(),
			},
		},
		{
			name: "invalid media url scheme",
			input: CreateJournalInput{
				UserID: 1, Title: "T", Content: "c",
				MediaURLs: []string{"ftp://example.com/pic.jpg"},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateJournal(ctx, tc.input)
			assertValidationError(t, err)
		})
	}
}

func make21URLs() []string {
	urls := make([]string, models.MaxMediaPerJournal+1)
	for i := range urls {
		urls[i] = "https://cdn.example.com/photo.jpg"
	}
	return urls
}

func TestJournalService_CreateJournal_AttachesMedia(t *testing.T) {
	t.Parallel()

	var created *models.Journal
	repo := noopJournalRepo()
	repo.createFn = func(_ context.Context, j *models.Journal) error {
		j.ID = 42
		created = j
		return nil
	}
	svc := NewJournalService(repo, nil)

	_, err := svc.CreateJournal(context.Background(), CreateJournalInput{
		UserID:    1,
		Title:     "  Hiking the Dolomites  ",
		Content:   "Day one.",
		MediaURLs: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Hiking the Dolomites", created.Title)
	assert.Len(t, created.Media, 2)
}

func TestJournalService_UpdateJournal_OwnerOnly(t *testing.T) {
	t.Parallel()

	repo := noopJournalRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Journal, error) {
		return &models.Journal{ID: id, UserID: 7, Title: "Old", Content: "old"}, nil
	}
	svc := NewJournalService(repo, nil)

	_, err := svc.UpdateJournal(context.Background(), UpdateJournalInput{
		UserID: 1, JournalID: 5, Title: "New",
	})
	assertUnauthorizedError(t, err)

	updated, err := svc.UpdateJournal(context.Background(), UpdateJournalInput{
		UserID: 7, JournalID: 5, Title: "New",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
}

func TestJournalService_DeleteJournal_Ownership(t *testing.T) {
	t.Parallel()

	ownedByOther := func() *journalRepoStub {
		repo := noopJournalRepo()
		repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Journal, error) {
			return &models.Journal{ID: id, UserID: 10}, nil
		}
		return repo
	}

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		repo := noopJournalRepo()
		repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Journal, error) {
			return &models.Journal{ID: id, UserID: 1}, nil
		}
		svc := NewJournalService(repo, nil)
		err := svc.DeleteJournal(context.Background(), DeleteJournalInput{UserID: 1, JournalID: 1})
		assert.NoError(t, err)
	})

	t.Run("non-owner without isAdmin returns unauthorized", func(t *testing.T) {
		t.Parallel()
		svc := NewJournalService(ownedByOther(), nil)
		err := svc.DeleteJournal(context.Background(), DeleteJournalInput{UserID: 1, JournalID: 1})
		assertUnauthorizedError(t, err)
	})

	t.Run("admin can delete another user's journal", func(t *testing.T) {
		t.Parallel()
		isAdmin := func(_ context.Context, _ uint) (bool, error) { return true, nil }
		svc := NewJournalService(ownedByOther(), isAdmin)
		err := svc.DeleteJournal(context.Background(), DeleteJournalInput{UserID: 1, JournalID: 1})
		assert.NoError(t, err)
	})

	t.Run("non-admin cannot delete another user's journal", func(t *testing.T) {
		t.Parallel()
		isAdmin := func(_ context.Context, _ uint) (bool, error) { return false, nil }
		svc := NewJournalService(ownedByOther(), isAdmin)
		err := svc.DeleteJournal(context.Background(), DeleteJournalInput{UserID: 1, JournalID: 1})
		assertUnauthorizedError(t, err)
	})
}

func TestJournalService_LikeJournal_MissingJournal(t *testing.T) {
	t.Parallel()

	repo := noopJournalRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Journal, error) {
		return nil, models.NewNotFoundError("Journal", id)
	}
	svc := NewJournalService(repo, nil)

	assertNotFoundError(t, svc.LikeJournal(context.Background(), 1, 99))
	assertNotFoundError(t, svc.UnlikeJournal(context.Background(), 1, 99))
}

func TestJournalService_ListByUser_ClampsPaging(t *testing.T) {
	t.Parallel()

	var gotLimit, gotOffset int
	repo := noopJournalRepo()
	repo.getByUserIDFn = func(_ context.Context, _ uint, limit, offset int, _ uint) ([]models.Journal, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}
	svc := NewJournalService(repo, nil)

	_, err := svc.ListByUser(context.Background(), 1, 500, -3, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
}
