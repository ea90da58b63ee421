package service

import (
	"context"
	"strings"
	"testing"

	"wayfarer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	t.Parallel()

	follows := noopFollowRepo()
	follows.countFollowersFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }
	follows.countFollowingFn = func(_ context.Context, _ uint) (int64, error) { return 5, nil }
	follows.isFollowingFn = func(_ context.Context, followerID, followedID uint) (bool, error) {
		return followerID == 9 && followedID == 1, nil
	}
	svc := NewUserService(noopUserRepo(), follows)

	profile, err := svc.GetProfile(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.FollowerCount)
	assert.Equal(t, int64(5), profile.FollowingCount)
	assert.True(t, profile.IsFollowing)

	own, err := svc.GetProfile(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.False(t, own.IsFollowing)
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo(), noopFollowRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input UpdateProfileInput
	}{
		{
			name:  "username too short",
			input: UpdateProfileInput{UserID: 1, Username: "ab"},
		},
		{
			name:  "username too long",
			input: UpdateProfileInput{UserID: 1, Username: strings.Repeat("x", 31)},
		},
		{
			name:  "bio too long",
			input: UpdateProfileInput{UserID: 1, Bio: strings.Repeat("x", 501)},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.UpdateProfile(ctx, tc.input)
			assertValidationError(t, err)
		})
	}
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "wanderer"}, nil
	}
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 2, Username: username}, nil
	}
	svc := NewUserService(users, noopFollowRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID: 1, Username: "nomad",
	})
	assertValidationError(t, err)

	// Keeping your own username is fine even though lookup would find it.
	_, err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID: 1, Username: "wanderer",
	})
	assert.NoError(t, err)
}

func TestUserService_SearchUsers(t *testing.T) {
	t.Parallel()

	t.Run("blank query rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopFollowRepo())
		_, err := svc.SearchUsers(context.Background(), "   ", 10)
		assertValidationError(t, err)
	})

	t.Run("limit clamped", func(t *testing.T) {
		t.Parallel()
		var gotLimit int
		users := noopUserRepo()
		users.searchFn = func(_ context.Context, _ string, limit int) ([]models.User, error) {
			gotLimit = limit
			return nil, nil
		}
		svc := NewUserService(users, noopFollowRepo())
		_, err := svc.SearchUsers(context.Background(), "amel", 0)
		require.NoError(t, err)
		assert.Equal(t, 20, gotLimit)
	})
}

func TestUserService_SetBlocked(t *testing.T) {
	t.Parallel()

	adminRepo := func(adminID uint) *userRepoStub {
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, IsAdmin: id == adminID}, nil
		}
		return users
	}

	t.Run("non-admin rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(adminRepo(99), noopFollowRepo())
		assertUnauthorizedError(t, svc.SetBlocked(context.Background(), 1, 2, true))
	})

	t.Run("admin blocks user", func(t *testing.T) {
		t.Parallel()
		users := adminRepo(1)
		var blockedID uint
		users.setBlockedFn = func(_ context.Context, id uint, blocked bool) error {
			blockedID = id
			assert.True(t, blocked)
			return nil
		}
		svc := NewUserService(users, noopFollowRepo())
		require.NoError(t, svc.SetBlocked(context.Background(), 1, 2, true))
		assert.Equal(t, uint(2), blockedID)
	})

	t.Run("admin cannot block self", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(adminRepo(1), noopFollowRepo())
		assertValidationError(t, svc.SetBlocked(context.Background(), 1, 1, true))
	})
}
