package fetcher

import (
	apperrors "VCS_Status_Dashboard/internal/dashboard/errors"
	"VCS_Status_Dashboard/internal/dashboard/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type cachedFeedClient struct {
	client FeedClient
	cache  repository.FeedCache
	mode   CacheMode
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// Fetch follows the cache mode:
// default serves entries younger than the ttl, force-cache and only-if-cached serve any entry,
// no-cache always downloads and refreshes the entry, no-store bypasses the cache.
// A failing cache is treated as a miss.
func (c *cachedFeedClient) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if c.mode == CacheNoStore {
		return c.client.Fetch(ctx, rawURL)
	}
	if c.mode != CacheNoCache {
		cached, found, err := c.cache.Get(ctx, rawURL)
		if err != nil {
			c.logger.Warn("failed to read feed cache", zap.String("url", rawURL), zap.Error(err))
		}
		if found && c.servable(cached) {
			return cached.Body, nil
		}
		if c.mode == CacheOnlyIfCached {
			return nil, fmt.Errorf("CachedFeedClient.Fetch %s: %w", rawURL, apperrors.ErrFeedNotCached)
		}
	}

	body, err := c.client.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if err = c.cache.Set(ctx, rawURL, repository.CachedFeed{Body: body, FetchedAt: c.now()}); err != nil {
		c.logger.Warn("failed to write feed cache", zap.String("url", rawURL), zap.Error(err))
	}
	return body, nil
}

func (c *cachedFeedClient) servable(cached repository.CachedFeed) bool {
	if c.mode == CacheForceCache || c.mode == CacheOnlyIfCached {
		return true
	}
	return c.now().Sub(cached.FetchedAt) <= c.ttl
}

func NewCachedFeedClient(client FeedClient, cache repository.FeedCache, mode CacheMode, ttl time.Duration, logger *zap.Logger) FeedClient {
	return &cachedFeedClient{
		client: client,
		cache:  cache,
		mode:   mode,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}
