package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

// CachedArticleService puts a short-TTL cache in front of List, keyed on
// the filter parameters. Mutating operations pass straight through; stale
// listings age out by TTL rather than being invalidated, the cache is not
// part of the correctness contract.
type CachedArticleService struct {
	ports.ArticleService
	cache  ports.ListCache
	logger zerolog.Logger
}

func NewCachedArticleService(inner ports.ArticleService, cache ports.ListCache, logger zerolog.Logger) *CachedArticleService {
	return &CachedArticleService{ArticleService: inner, cache: cache, logger: logger}
}

func (s *CachedArticleService) List(ctx context.Context, filter ports.ListFilter) ([]domain.Article, error) {
	if articles, ok, err := s.cache.Get(ctx, filter); err != nil {
		s.logger.Debug().Err(err).Msg("list cache read failed")
	} else if ok {
		return articles, nil
	}

	articles, err := s.ArticleService.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, filter, articles); err != nil {
		s.logger.Debug().Err(err).Msg("list cache write failed")
	}
	return articles, nil
}
