package handler

import (
	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

func toListFilter(q listArticlesQuery) ports.ListFilter {
	return ports.ListFilter{
		Author:  q.AuthorName,
		Date:    q.PublicationDate,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
}

func toArticleResponse(a domain.Article) articleResponse {
	return articleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Contents:        a.Contents,
		PublicationDate: a.PublicationDate.Format(domain.DateLayout),
		Author:          a.Author,
	}
}

func toArticleResponses(articles []domain.Article) []articleResponse {
	out := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}
	return out
}
