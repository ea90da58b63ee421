package service

import (
	"context"
	"testing"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_FollowUser(t *testing.T) {
	t.Parallel()

	t.Run("self-follow rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo(), noopUserRepo())
		assertValidationError(t, svc.FollowUser(context.Background(), 1, 1))
	})

	t.Run("missing target rejected", func(t *testing.T) {
		t.Parallel()
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewFollowService(noopFollowRepo(), users)
		assertNotFoundError(t, svc.FollowUser(context.Background(), 1, 99))
	})

	t.Run("duplicate follow is a no-op", func(t *testing.T) {
		t.Parallel()
		follows := noopFollowRepo()
		follows.createFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewFollowService(follows, noopUserRepo())
		assert.NoError(t, svc.FollowUser(context.Background(), 1, 2))
	})
}

func TestFollowService_UnfollowUser(t *testing.T) {
	t.Parallel()

	t.Run("missing edge reported", func(t *testing.T) {
		t.Parallel()
		follows := noopFollowRepo()
		follows.deleteFn = func(_ context.Context, _, _ uint) error {
			return repository.ErrNotFollowing
		}
		svc := NewFollowService(follows, noopUserRepo())
		assertNotFoundError(t, svc.UnfollowUser(context.Background(), 1, 2))
	})

	t.Run("existing edge removed", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo(), noopUserRepo())
		assert.NoError(t, svc.UnfollowUser(context.Background(), 1, 2))
	})
}

func TestFollowService_Suggestions_ClampsLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	users := noopUserRepo()
	users.suggestionsFn = func(_ context.Context, _ uint, limit int) ([]models.User, error) {
		gotLimit = limit
		return []models.User{{ID: 2}}, nil
	}
	svc := NewFollowService(noopFollowRepo(), users)

	got, err := svc.Suggestions(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Len(t, got, 1)
}
