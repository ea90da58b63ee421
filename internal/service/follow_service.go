package service

import (
	"context"
	"errors"

	"wayfarer/internal/models"
	"wayfarer/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// FollowUser creates a follow edge. Following someone already followed is
// a no-op; following yourself is rejected.
func (s *FollowService) FollowUser(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		return models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}
	if _, err := s.followRepo.Create(ctx, followerID, followedID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *FollowService) UnfollowUser(ctx context.Context, followerID, followedID uint) error {
	err := s.followRepo.Delete(ctx, followerID, followedID)
	if errors.Is(err, repository.ErrNotFollowing) {
		return models.NewNotFoundError("Follow", followedID)
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	following, err := s.followRepo.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return following, nil
}

func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, userID)
}

// Suggestions returns users the requester might want to follow, excluding
// anyone already followed, blocked users, and the requester.
func (s *FollowService) Suggestions(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	users, err := s.userRepo.Suggestions(ctx, userID, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
