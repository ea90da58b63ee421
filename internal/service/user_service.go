package service

import (
	"context"
	"strings"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// UserProfile is a user together with their follow counts.
type UserProfile struct {
	models.User
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`
}

type UpdateProfileInput struct {
	UserID   uint
	Username string
	Bio      string
	Avatar   string
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetProfile returns a user's public profile with follower counts and
// whether the requesting user follows them.
func (s *UserService) GetProfile(ctx context.Context, userID, currentUserID uint) (*UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	following, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	profile := &UserProfile{
		User:           *user,
		FollowerCount:  followers,
		FollowingCount: following,
	}
	if currentUserID != 0 && currentUserID != userID {
		isFollowing, err := s.followRepo.IsFollowing(ctx, currentUserID, userID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		profile.IsFollowing = isFollowing
	}
	return profile, nil
}

const maxBioLen = 500

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		username := strings.TrimSpace(in.Username)
		if len(username) < 3 || len(username) > 30 {
			return nil, models.NewValidationError("Username must be between 3 and 30 characters")
		}
		if username != user.Username {
			existing, err := s.userRepo.GetByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, models.NewValidationError("Username is already taken")
			}
			user.Username = username
		}
	}
	if len(in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 500 characters)")
	}
	user.Bio = in.Bio
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	users, err := s.userRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// SetBlocked flips a user's blocked flag. Blocked users are excluded from
// the explore feed and from follow suggestions. Admin only.
func (s *UserService) SetBlocked(ctx context.Context, adminID, targetID uint, blocked bool) error {
	admin, err := s.IsAdmin(ctx, adminID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !admin {
		return models.NewUnauthorizedError("Admin privileges required")
	}
	if adminID == targetID {
		return models.NewValidationError("You cannot block yourself")
	}
	return s.userRepo.SetBlocked(ctx, targetID, blocked)
}

// IsAdmin reports whether the user holds the admin role. Passed into other
// services as their privilege check.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
