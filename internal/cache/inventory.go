package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix   = "user:%d"
	githubKeyPrefix = "github:%s"
)

const (
	// UserTTL bounds staleness of cached user records.
	UserTTL = 5 * time.Minute
	// GithubTTL bounds staleness of proxied GitHub repo listings.
	GithubTTL = 10 * time.Minute
)

// UserKey returns the cache key for a user record.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// GithubKey returns the cache key for a GitHub repo listing.
func GithubKey(username string) string {
	return fmt.Sprintf(githubKeyPrefix, username)
}

// Invalidate removes a key, ignoring errors; the cache is best-effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes a cached user record.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
