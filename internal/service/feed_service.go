package service

import (
	"context"
	"sort"
	"time"

	"wayfarer/internal/models"
	"wayfarer/internal/observability"
	"wayfarer/internal/ranking"
	"wayfarer/internal/repository"

	"github.com/samber/lo"
)

// exploreCandidateLimit caps the explore feed candidate set before ranking.
const exploreCandidateLimit = 500

// FeedService composes the four feed views. Feeds are recomputed from
// current store state on every request and never cached; the per-item
// liked and share-provenance flags depend on the requesting user.
type FeedService struct {
	feedRepo   repository.FeedRepository
	followRepo repository.FollowRepository
	shareRepo  repository.ShareRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

func NewFeedService(
	feedRepo repository.FeedRepository,
	followRepo repository.FollowRepository,
	shareRepo repository.ShareRepository,
	userRepo repository.UserRepository,
) *FeedService {
	return &FeedService{
		feedRepo:   feedRepo,
		followRepo: followRepo,
		shareRepo:  shareRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

// OwnFeed returns the requester's own journals, newest first. Engagement
// scores are computed for display but do not drive the ordering.
func (s *FeedService) OwnFeed(ctx context.Context, userID uint) ([]models.Journal, error) {
	start := time.Now()

	journals, err := s.feedRepo.OwnedJournals(ctx, userID, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := s.annotateProvenance(ctx, journals, userID); err != nil {
		return nil, err
	}

	s.score(journals)
	sort.SliceStable(journals, func(i, j int) bool {
		return journals[i].CreatedAt.After(journals[j].CreatedAt)
	})

	observability.ObserveFeedRequest("own", len(journals), start)
	return journals, nil
}

// SocialFeed returns journals authored by followed users together with
// journals shared by followed users, deduplicated by journal identity and
// ordered by engagement score.
func (s *FeedService) SocialFeed(ctx context.Context, userID uint) ([]models.Journal, error) {
	start := time.Now()

	followedIDs, err := s.followRepo.GetFollowedIDs(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	authored, err := s.feedRepo.JournalsByAuthors(ctx, followedIDs, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	sharedIDs, err := s.feedRepo.SharedJournalIDs(ctx, followedIDs)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	// A journal reachable both by authorship and by a followed user's
	// share must appear exactly once.
	authoredIDs := lo.Map(authored, func(j models.Journal, _ int) uint { return j.ID })
	missingIDs, _ := lo.Difference(sharedIDs, authoredIDs)

	shared, err := s.feedRepo.JournalsByIDs(ctx, missingIDs, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	journals := lo.UniqBy(append(authored, shared...), func(j models.Journal) uint { return j.ID })

	if err := s.annotateProvenanceWithFollowed(ctx, journals, followedIDs); err != nil {
		return nil, err
	}

	s.score(journals)
	ranking.SortByScore(journals)

	observability.ObserveFeedRequest("social", len(journals), start)
	return journals, nil
}

// ExploreFeed returns the network-wide candidate set ordered by engagement
// score. This is the only feed where content from non-followed users
// surfaces by popularity.
func (s *FeedService) ExploreFeed(ctx context.Context, userID uint) ([]models.Journal, error) {
	start := time.Now()

	journals, err := s.feedRepo.AllJournals(ctx, exploreCandidateLimit, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := s.annotateProvenance(ctx, journals, userID); err != nil {
		return nil, err
	}

	s.score(journals)
	ranking.SortByScore(journals)

	observability.ObserveFeedRequest("explore", len(journals), start)
	return journals, nil
}

// ProfileFeed returns a user's owned journals merged with the journals they
// shared, ordered by display date (share time for shared entries, creation
// time for owned ones). A journal the user both owns and shared appears
// twice; the two entries carry different display dates and flags.
func (s *FeedService) ProfileFeed(ctx context.Context, profileUserID, currentUserID uint) ([]models.Journal, error) {
	start := time.Now()

	owned, err := s.feedRepo.OwnedJournals(ctx, profileUserID, currentUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range owned {
		created := owned[i].CreatedAt
		owned[i].DisplayDate = &created
	}

	shares, err := s.shareRepo.ListByUser(ctx, profileUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	var sharer *models.User
	if len(shares) > 0 {
		sharer, err = s.userRepo.GetByID(ctx, profileUserID)
		if err != nil {
			return nil, err
		}
	}

	sharedJournalIDs := lo.Map(shares, func(sh models.Share, _ int) uint { return sh.JournalID })
	sharedJournals, err := s.feedRepo.JournalsByIDs(ctx, sharedJournalIDs, currentUserID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	byID := lo.KeyBy(sharedJournals, func(j models.Journal) uint { return j.ID })

	feed := owned
	for _, sh := range shares {
		j, ok := byID[sh.JournalID]
		if !ok {
			continue
		}
		shareTime := sh.CreatedAt
		j.DisplayDate = &shareTime
		j.SharedByFollowed = true
		j.SharedBy = sharer
		feed = append(feed, j)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].DisplayDate.After(*feed[j].DisplayDate)
	})

	observability.ObserveFeedRequest("profile", len(feed), start)
	return feed, nil
}

// score computes engagement scores normalized against the candidate set.
func (s *FeedService) score(journals []models.Journal) {
	start := time.Now()
	ranking.ScoreAll(journals, s.now())
	observability.EngagementScoreLatency.Observe(time.Since(start).Seconds())
}

// annotateProvenance marks journals shared by users the requester follows
// and attaches the most recent such sharer.
func (s *FeedService) annotateProvenance(ctx context.Context, journals []models.Journal, userID uint) error {
	if len(journals) == 0 || userID == 0 {
		return nil
	}
	followedIDs, err := s.followRepo.GetFollowedIDs(ctx, userID)
	if err != nil {
		return models.NewInternalError(err)
	}
	return s.annotateProvenanceWithFollowed(ctx, journals, followedIDs)
}

func (s *FeedService) annotateProvenanceWithFollowed(ctx context.Context, journals []models.Journal, followedIDs []uint) error {
	if len(journals) == 0 || len(followedIDs) == 0 {
		return nil
	}

	journalIDs := lo.Map(journals, func(j models.Journal, _ int) uint { return j.ID })
	sharers, err := s.shareRepo.SharedJournalIDsByUsers(ctx, followedIDs, journalIDs)
	if err != nil {
		return models.NewInternalError(err)
	}
	if len(sharers) == 0 {
		return nil
	}

	sharerUsers, err := s.userRepo.GetByIDs(ctx, lo.Uniq(lo.Values(sharers)))
	if err != nil {
		return err
	}
	userByID := lo.KeyBy(sharerUsers, func(u models.User) uint { return u.ID })

	for i := range journals {
		sharerID, ok := sharers[journals[i].ID]
		if !ok {
			continue
		}
		journals[i].SharedByFollowed = true
		if u, found := userByID[sharerID]; found {
			sharedBy := u
			journals[i].SharedBy = &sharedBy
		}
	}
	return nil
}
