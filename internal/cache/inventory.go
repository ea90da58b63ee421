package cache

import (
	"context"
	"fmt"
	"time"
)

// Feeds are never cached; engagement scores must reflect the live counters.
// Only slow-moving single-entity reads get cache keys here.
const (
	UserKeyPrefix    = "user:%d"
	JournalKeyPrefix = "journal:%d"
)

const (
	UserTTL    = 5 * time.Minute
	JournalTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func JournalKey(journalID uint) string {
	return fmt.Sprintf(JournalKeyPrefix, journalID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateJournal(ctx context.Context, journalID uint) {
	Invalidate(ctx, JournalKey(journalID))
}
