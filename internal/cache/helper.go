package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	postKeyPrefix   = "post:%d"
	githubKeyPrefix = "github:%s"
)

const (
	// PostTTL bounds staleness of cached post reads.
	PostTTL = 5 * time.Minute
	// GithubTTL bounds staleness of proxied GitHub repo listings.
	GithubTTL = 10 * time.Minute
)

// PostKey builds the cache key for a post.
func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// GithubKey builds the cache key for a GitHub username's repo listing.
func GithubKey(username string) string {
	return fmt.Sprintf(githubKeyPrefix, username)
}

// Invalidate removes a key, best effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
// A value that no longer decodes is dropped and reported as a miss, so a
// corrupt entry cannot keep failing reads until it expires.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err != nil {
		return false, nil
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which must write into
// dest), then stores the result with ttl, best effort.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}
