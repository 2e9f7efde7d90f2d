package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/myjournal/journal-api/internal/api/metrics"
	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

const listCacheTTL = 30 * time.Second

// ListCache caches article listings in Redis, keyed on the filter
// parameters. Entries expire after listCacheTTL; nothing invalidates them
// on writes.
type ListCache struct {
	client *redis.Client
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{client: client}
}

func (c *ListCache) Get(ctx context.Context, filter ports.ListFilter) ([]domain.Article, bool, error) {
	raw, err := c.client.Get(ctx, c.key(filter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ListCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("list cache get: %w", err)
	}

	var articles []domain.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		// stale or corrupt entry, treat as a miss
		metrics.ListCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.ListCacheTotal.WithLabelValues("hit").Inc()
	return articles, true, nil
}

func (c *ListCache) Set(ctx context.Context, filter ports.ListFilter, articles []domain.Article) error {
	raw, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("list cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, c.key(filter), raw, listCacheTTL).Err(); err != nil {
		return fmt.Errorf("list cache set: %w", err)
	}
	return nil
}

// key builds a deterministic cache key from the filter parameters.
// Key format: articles:list:<author>:<date>:<page>:<per_page>
// Author and date are query-escaped so a value containing the separator
// cannot collide with a different filter's key.
func (c *ListCache) key(filter ports.ListFilter) string {
	page, perPage := -1, -1
	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.PerPage != nil {
		perPage = *filter.PerPage
	}
	return fmt.Sprintf("articles:list:%s:%s:%d:%d",
		url.QueryEscape(filter.Author), url.QueryEscape(filter.Date), page, perPage)
}
