package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

// ArticleService orchestrates the article lifecycle: listing with
// prioritized filters, and create/edit/delete guarded by the authorization
// policy. It holds no article state between requests; every operation
// re-reads from the store.
type ArticleService struct {
	repo   ports.ArticleRepository
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, logger: logger}
}

// List applies at most one filter, in priority order: author, then date,
// then pagination, then the unfiltered listing. An author filter ignores
// any date or pagination parameters supplied alongside it; pagination only
// applies when both page and per_page are present.
func (s *ArticleService) List(ctx context.Context, filter ports.ListFilter) ([]domain.Article, error) {
	switch {
	case filter.Author != "":
		return s.repo.FindByAuthor(ctx, filter.Author)
	case filter.Date != "":
		day, err := time.ParseInLocation(domain.DateLayout, filter.Date, time.UTC)
		if err != nil {
			return nil, domain.ErrInvalidDateFormat
		}
		return s.repo.FindByDate(ctx, day)
	case filter.Page != nil && filter.PerPage != nil:
		offset := int64(*filter.Page-1) * int64(*filter.PerPage)
		return s.repo.Paginate(ctx, offset, int64(*filter.PerPage))
	default:
		return s.repo.FindAll(ctx)
	}
}

// Create stores a new article authored by the identity, publication date
// set server-side to today. Store failures are fatal to the request and
// not retried.
func (s *ArticleService) Create(ctx context.Context, identity *domain.User, title, contents string) (*domain.Article, error) {
	if !domain.CanCreate(identity) {
		return nil, domain.ErrCredentialAbsent
	}

	article := &domain.Article{
		Title:           title,
		Contents:        contents,
		PublicationDate: domain.Today(time.Now()),
		Author:          identity.Name,
	}

	created, err := s.repo.Insert(ctx, article)
	if err != nil {
		s.logger.Error().Err(err).Str("collection", "articles").Msg("failed to insert article")
		return nil, domain.ErrStorageFailure
	}

	s.logger.Info().Int64("article_id", created.ID).Str("author", created.Author).Msg("article created")
	return created, nil
}

// Edit updates title and contents of an existing article. The existence
// check always precedes the permission check, so a missing article yields
// ErrArticleNotFound even for an unauthorized caller. The read-then-write
// sequence is not protected against a concurrent delete; the update of a
// row removed in between simply affects nothing.
func (s *ArticleService) Edit(ctx context.Context, identity *domain.User, id int64, title, contents string) error {
	if identity == nil {
		return domain.ErrCredentialAbsent
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanEdit(identity, article) {
		return domain.ErrNoEditPermission
	}

	if err := s.repo.Update(ctx, id, ports.ArticleUpdate{Title: title, Contents: contents}); err != nil {
		s.logger.Error().Err(err).Str("collection", "articles").Int64("article_id", id).Msg("failed to update article")
		return domain.ErrStorageFailure
	}

	s.logger.Info().Int64("article_id", id).Str("editor", identity.Name).Msg("article edited")
	return nil
}

// Delete removes an article permanently. Same ordering rule as Edit:
// not-found is reported before any permission decision.
func (s *ArticleService) Delete(ctx context.Context, identity *domain.User, id int64) error {
	if identity == nil {
		return domain.ErrCredentialAbsent
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDelete(identity, article) {
		return domain.ErrNoDeletePermission
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("collection", "articles").Int64("article_id", id).Msg("failed to delete article")
		return domain.ErrStorageFailure
	}

	s.logger.Info().Int64("article_id", id).Str("deleted_by", identity.Name).Msg("article deleted")
	return nil
}
