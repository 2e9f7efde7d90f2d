package ports

import (
	"context"
	"time"

	"github.com/myjournal/journal-api/internal/core/domain"
)

// ArticleUpdate carries the only fields an edit may touch. ID, author and
// publication date are immutable after creation.
type ArticleUpdate struct {
	Title    string
	Contents string
}

// ArticleRepository defines the interface for article persistence. Each
// call is independently atomic; multi-call sequences are not.
type ArticleRepository interface {
	Insert(ctx context.Context, article *domain.Article) (*domain.Article, error)
	// FindByID returns domain.ErrArticleNotFound when no such article exists.
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	FindByAuthor(ctx context.Context, author string) ([]domain.Article, error)
	FindByDate(ctx context.Context, date time.Time) ([]domain.Article, error)
	Paginate(ctx context.Context, offset, limit int64) ([]domain.Article, error)
	FindAll(ctx context.Context) ([]domain.Article, error)
	Update(ctx context.Context, id int64, upd ArticleUpdate) error
	Delete(ctx context.Context, id int64) error
}
