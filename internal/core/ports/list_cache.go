package ports

import (
	"context"

	"github.com/myjournal/journal-api/internal/core/domain"
)

// ListCache caches listing results keyed on the filter parameters. A miss
// is (nil, false, nil); cache failures are returned but callers treat them
// as misses, the cache is not part of the correctness contract.
type ListCache interface {
	Get(ctx context.Context, filter ListFilter) ([]domain.Article, bool, error)
	Set(ctx context.Context, filter ListFilter, articles []domain.Article) error
}
