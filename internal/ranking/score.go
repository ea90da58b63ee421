// Package ranking computes engagement scores for journal entries.
//
// Scores are relative to the candidate set being ranked: each entry's like,
// comment, and share counts are normalized against the maxima of the set,
// and recency is normalized against the time span covered by the set. The
// same entry can therefore score differently in different feeds.
package ranking

import (
	"sort"
	"time"

	"wayfarer/internal/models"
)

// Weights of the score components. Recency dominates; the three engagement
// signals split the remaining half evenly.
const (
	RecencyWeight    = 0.5
	EngagementWeight = 1.0 / 6.0
)

const secondsPerDay = 86400

// Maxima holds the per-signal maxima of a candidate set. Each value is
// floored at 1 so that a set with no engagement still normalizes cleanly.
type Maxima struct {
	Likes    int
	Comments int
	Shares   int
}

// CollectMaxima scans the candidate set and returns its engagement maxima.
func CollectMaxima(journals []models.Journal) Maxima {
	m := Maxima{Likes: 1, Comments: 1, Shares: 1}
	for i := range journals {
		if journals[i].LikeCount > m.Likes {
			m.Likes = journals[i].LikeCount
		}
		if journals[i].CommentCount > m.Comments {
			m.Comments = journals[i].CommentCount
		}
		if journals[i].ShareCount > m.Shares {
			m.Shares = journals[i].ShareCount
		}
	}
	return m
}

// TimeSpanDays returns the whole number of days between the oldest entry in
// the set and now, with a minimum of one day.
func TimeSpanDays(oldest, now time.Time) int {
	days := int(now.Sub(oldest).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// Score computes the engagement score of one entry against the set maxima
// and time span.
//
// Recency is 1 at the moment of creation and decays linearly to 0 at the far
// edge of the span. It is deliberately not clamped: an entry older than the
// span (possible when the span is floored at one day) scores negative
// recency and sinks to the bottom.
func Score(j *models.Journal, m Maxima, spanDays int, now time.Time) float64 {
	recencySeconds := now.Sub(j.CreatedAt).Seconds()
	normalizedRecency := 1 - recencySeconds/float64(spanDays*secondsPerDay)

	return RecencyWeight*normalizedRecency +
		EngagementWeight*(float64(j.LikeCount)/float64(m.Likes)) +
		EngagementWeight*(float64(j.CommentCount)/float64(m.Comments)) +
		EngagementWeight*(float64(j.ShareCount)/float64(m.Shares))
}

// ScoreAll computes and assigns EngagementScore for every entry in the set,
// normalizing against the set itself.
func ScoreAll(journals []models.Journal, now time.Time) {
	if len(journals) == 0 {
		return
	}

	oldest := journals[0].CreatedAt
	for i := range journals {
		if journals[i].CreatedAt.Before(oldest) {
			oldest = journals[i].CreatedAt
		}
	}

	m := CollectMaxima(journals)
	spanDays := TimeSpanDays(oldest, now)

	for i := range journals {
		journals[i].EngagementScore = Score(&journals[i], m, spanDays, now)
	}
}

// SortByScore orders entries by descending engagement score, breaking ties
// by most recent creation time.
func SortByScore(journals []models.Journal) {
	sort.SliceStable(journals, func(i, j int) bool {
		if journals[i].EngagementScore != journals[j].EngagementScore {
			return journals[i].EngagementScore > journals[j].EngagementScore
		}
		return journals[i].CreatedAt.After(journals[j].CreatedAt)
	})
}

// Rank scores and sorts the candidate set in place.
func Rank(journals []models.Journal, now time.Time) {
	ScoreAll(journals, now)
	SortByScore(journals)
}
