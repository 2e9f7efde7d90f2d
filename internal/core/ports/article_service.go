package ports

import (
	"context"

	"github.com/myjournal/journal-api/internal/core/domain"
)

// ListFilter carries the optional listing filters. Filters are prioritized,
// not combined: author wins over date, date over pagination, pagination
// over the unfiltered listing. Page and PerPage only take effect together.
type ListFilter struct {
	Author  string
	Date    string
	Page    *int
	PerPage *int
}

type ArticleService interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Article, error)
	Create(ctx context.Context, identity *domain.User, title, contents string) (*domain.Article, error)
	Edit(ctx context.Context, identity *domain.User, id int64, title, contents string) error
	Delete(ctx context.Context, identity *domain.User, id int64) error
}
