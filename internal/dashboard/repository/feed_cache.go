package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type CachedFeed struct {
	Body      []byte
	FetchedAt time.Time
}

// FeedCache stores the last downloaded body of every feed url.
type FeedCache interface {
	Get(ctx context.Context, url string) (CachedFeed, bool, error)
	Set(ctx context.Context, url string, feed CachedFeed) error
}

type redisFeedCache struct {
	redis     *redis.Client
	retention time.Duration
}

func FeedCacheKey(url string) string {
	return fmt.Sprintf("feed:%s", url)
}

func EncodeCachedFeed(feed CachedFeed) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(feed); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *redisFeedCache) Get(ctx context.Context, url string) (CachedFeed, bool, error) {
	data, err := c.redis.Get(ctx, FeedCacheKey(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return CachedFeed{}, false, nil
	}
	if err != nil {
		return CachedFeed{}, false, fmt.Errorf("FeedCache.Get: %w", err)
	}
	var feed CachedFeed
	if err = gob.NewDecoder(bytes.NewReader(data)).Decode(&feed); err != nil {
		return CachedFeed{}, false, fmt.Errorf("FeedCache.Get: %w", err)
	}
	return feed, true, nil
}

func (c *redisFeedCache) Set(ctx context.Context, url string, feed CachedFeed) error {
	data, err := EncodeCachedFeed(feed)
	if err != nil {
		return fmt.Errorf("FeedCache.Set: %w", err)
	}
	if err = c.redis.Set(ctx, FeedCacheKey(url), data, c.retention).Err(); err != nil {
		return fmt.Errorf("FeedCache.Set: %w", err)
	}
	return nil
}

// NewRedisFeedCache keeps entries for retention, or forever when retention is 0.
// Entries older than the freshness TTL stay available to force-cache and only-if-cached fetches.
func NewRedisFeedCache(redis *redis.Client, retention time.Duration) FeedCache {
	return &redisFeedCache{
		redis:     redis,
		retention: retention,
	}
}
