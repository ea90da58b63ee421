package service

import (
	"context"
	"errors"
	"testing"

	"wayfarer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

// journalRepoStub is a stub for repository.JournalRepository.
type journalRepoStub struct {
	createFn             func(context.Context, *models.Journal) error
	getByIDFn            func(context.Context, uint, uint) (*models.Journal, error)
	getByUserIDFn        func(context.Context, uint, int, int, uint) ([]models.Journal, error)
	updateFn             func(context.Context, *models.Journal) error
	deleteFn             func(context.Context, uint) error
	isLikedFn            func(context.Context, uint, uint) (bool, error)
	getLikedJournalIDsFn func(context.Context, uint, []uint) ([]uint, error)
	likeFn               func(context.Context, uint, uint) error
	unlikeFn             func(context.Context, uint, uint) error
}

func (s *journalRepoStub) Create(ctx context.Context, journal *models.Journal) error {
	return s.createFn(ctx, journal)
}
func (s *journalRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Journal, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *journalRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Journal, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *journalRepoStub) Update(ctx context.Context, journal *models.Journal) error {
	return s.updateFn(ctx, journal)
}
func (s *journalRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *journalRepoStub) IsLiked(ctx context.Context, userID, journalID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, journalID)
}
func (s *journalRepoStub) GetLikedJournalIDs(ctx context.Context, userID uint, journalIDs []uint) ([]uint, error) {
	return s.getLikedJournalIDsFn(ctx, userID, journalIDs)
}
func (s *journalRepoStub) Like(ctx context.Context, userID, journalID uint) error {
	return s.likeFn(ctx, userID, journalID)
}
func (s *journalRepoStub) Unlike(ctx context.Context, userID, journalID uint) error {
	return s.unlikeFn(ctx, userID, journalID)
}
func (s *journalRepoStub) RefreshCommentCount(_ context.Context, _ *gorm.DB, _ uint) {}

func noopJournalRepo() *journalRepoStub {
	return &journalRepoStub{
		createFn:  func(_ context.Context, _ *models.Journal) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Journal, error) { return &models.Journal{ID: id}, nil },
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]models.Journal, error) {
			return nil, nil
		},
		updateFn:             func(_ context.Context, _ *models.Journal) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
		isLikedFn:            func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		getLikedJournalIDsFn: func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
		likeFn:               func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:             func(_ context.Context, _, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByJournalFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn        func(context.Context, *models.Comment) error
	deleteFn        func(context.Context, uint) error
	depthFn         func(context.Context, uint) (int, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByJournal(ctx context.Context, journalID uint) ([]*models.Comment, error) {
	return s.listByJournalFn(ctx, journalID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Depth(ctx context.Context, parentID uint) (int, error) {
	return s.depthFn(ctx, parentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByJournalFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		depthFn:         func(_ context.Context, _ uint) (int, error) { return 0, nil },
	}
}

// shareRepoStub is a stub for repository.ShareRepository.
type shareRepoStub struct {
	createFn                  func(context.Context, uint, uint) (bool, error)
	deleteFn                  func(context.Context, uint, uint) error
	existsFn                  func(context.Context, uint, uint) (bool, error)
	listByUserFn              func(context.Context, uint) ([]models.Share, error)
	sharedJournalIDsByUsersFn func(context.Context, []uint, []uint) (map[uint]uint, error)
}

func (s *shareRepoStub) Create(ctx context.Context, userID, journalID uint) (bool, error) {
	return s.createFn(ctx, userID, journalID)
}
func (s *shareRepoStub) Delete(ctx context.Context, userID, journalID uint) error {
	return s.deleteFn(ctx, userID, journalID)
}
func (s *shareRepoStub) Exists(ctx context.Context, userID, journalID uint) (bool, error) {
	return s.existsFn(ctx, userID, journalID)
}
func (s *shareRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Share, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *shareRepoStub) SharedJournalIDsByUsers(ctx context.Context, userIDs, journalIDs []uint) (map[uint]uint, error) {
	return s.sharedJournalIDsByUsersFn(ctx, userIDs, journalIDs)
}

func noopShareRepo() *shareRepoStub {
	return &shareRepoStub{
		createFn:     func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		deleteFn:     func(_ context.Context, _, _ uint) error { return nil },
		existsFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listByUserFn: func(_ context.Context, _ uint) ([]models.Share, error) { return nil, nil },
		sharedJournalIDsByUsersFn: func(_ context.Context, _, _ []uint) (map[uint]uint, error) {
			return nil, nil
		},
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn         func(context.Context, uint, uint) (bool, error)
	deleteFn         func(context.Context, uint, uint) error
	isFollowingFn    func(context.Context, uint, uint) (bool, error)
	getFollowedIDsFn func(context.Context, uint) ([]uint, error)
	getFollowersFn   func(context.Context, uint) ([]models.User, error)
	getFollowingFn   func(context.Context, uint) ([]models.User, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.createFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followedID uint) error {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}
func (s *followRepoStub) GetFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.getFollowedIDsFn(ctx, followerID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowersFn(ctx, userID)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFollowingFn(ctx, userID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		deleteFn:         func(_ context.Context, _, _ uint) error { return nil },
		isFollowingFn:    func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		getFollowedIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		getFollowersFn:   func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		getFollowingFn:   func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		countFollowersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countFollowingFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	getByIDsFn      func(context.Context, []uint) ([]models.User, error)
	searchFn        func(context.Context, string, int) ([]models.User, error)
	suggestionsFn   func(context.Context, uint, int) ([]models.User, error)
	setBlockedFn    func(context.Context, uint, bool) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *userRepoStub) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	return s.searchFn(ctx, query, limit)
}
func (s *userRepoStub) Suggestions(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.suggestionsFn(ctx, userID, limit)
}
func (s *userRepoStub) SetBlocked(ctx context.Context, id uint, blocked bool) error {
	return s.setBlockedFn(ctx, id, blocked)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		getByIDsFn:      func(_ context.Context, _ []uint) ([]models.User, error) { return nil, nil },
		searchFn:        func(_ context.Context, _ string, _ int) ([]models.User, error) { return nil, nil },
		suggestionsFn:   func(_ context.Context, _ uint, _ int) ([]models.User, error) { return nil, nil },
		setBlockedFn:    func(_ context.Context, _ uint, _ bool) error { return nil },
	}
}

// feedRepoStub is a stub for repository.FeedRepository.
type feedRepoStub struct {
	ownedJournalsFn     func(context.Context, uint, uint) ([]models.Journal, error)
	journalsByAuthorsFn func(context.Context, []uint, uint) ([]models.Journal, error)
	journalsByIDsFn     func(context.Context, []uint, uint) ([]models.Journal, error)
	allJournalsFn       func(context.Context, int, uint) ([]models.Journal, error)
	sharedJournalIDsFn  func(context.Context, []uint) ([]uint, error)
}

func (s *feedRepoStub) OwnedJournals(ctx context.Context, userID, currentUserID uint) ([]models.Journal, error) {
	return s.ownedJournalsFn(ctx, userID, currentUserID)
}
func (s *feedRepoStub) JournalsByAuthors(ctx context.Context, authorIDs []uint, currentUserID uint) ([]models.Journal, error) {
	return s.journalsByAuthorsFn(ctx, authorIDs, currentUserID)
}
func (s *feedRepoStub) JournalsByIDs(ctx context.Context, ids []uint, currentUserID uint) ([]models.Journal, error) {
	return s.journalsByIDsFn(ctx, ids, currentUserID)
}
func (s *feedRepoStub) AllJournals(ctx context.Context, limit int, currentUserID uint) ([]models.Journal, error) {
	return s.allJournalsFn(ctx, limit, currentUserID)
}
func (s *feedRepoStub) SharedJournalIDs(ctx context.Context, userIDs []uint) ([]uint, error) {
	return s.sharedJournalIDsFn(ctx, userIDs)
}

func noopFeedRepo() *feedRepoStub {
	return &feedRepoStub{
		ownedJournalsFn:     func(_ context.Context, _, _ uint) ([]models.Journal, error) { return nil, nil },
		journalsByAuthorsFn: func(_ context.Context, _ []uint, _ uint) ([]models.Journal, error) { return nil, nil },
		journalsByIDsFn:     func(_ context.Context, _ []uint, _ uint) ([]models.Journal, error) { return nil, nil },
		allJournalsFn:       func(_ context.Context, _ int, _ uint) ([]models.Journal, error) { return nil, nil },
		sharedJournalIDsFn:  func(_ context.Context, _ []uint) ([]uint, error) { return nil, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
