package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/myjournal/journal-api/internal/api/metrics"
	"github.com/myjournal/journal-api/internal/api/middleware"
	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for the article lifecycle.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /articles. Filters are prioritized, not combined:
// author_name wins over publication_date, which wins over page/per_page.
//
// @Summary      List articles with optional filters
// @Tags         articles
// @Produce      json
// @Param        author_name       query     string  false  "Filter by author name"
// @Param        publication_date  query     string  false  "Filter by publication date (YYYY-MM-DD)"
// @Param        page              query     int     false  "Page number (min 1)"
// @Param        per_page          query     int     false  "Page size (max 10)"
// @Success      200               {array}   articleResponse
// @Failure      400               {object}  errorResponse
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	var q listArticlesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	articles, err := h.service.List(c.Request().Context(), toListFilter(q))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toArticleResponses(articles))
}

// Create handles POST /articles. The author is the authenticated caller
// and the publication date is set server-side.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      articleRequest  true  "Article title and contents"
// @Success      201   {object}  articleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	article, err := h.service.Create(c.Request().Context(), identity, req.Title, req.Contents)
	if err != nil {
		return err
	}

	metrics.ArticlesMutatedTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toArticleResponse(*article))
}

// Edit handles PUT /articles/:id. Only title and contents change; a
// missing article is reported before any permission decision.
//
// @Summary      Edit an article
// @Tags         articles
// @Accept       json
// @Param        id    path      int             true  "Article ID"
// @Param        body  body      articleRequest  true  "New title and contents"
// @Success      200
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Edit(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	id, err := articleID(c)
	if err != nil {
		return err
	}

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Edit(c.Request().Context(), identity, id, req.Title, req.Contents); err != nil {
		return err
	}

	metrics.ArticlesMutatedTotal.WithLabelValues("edit").Inc()
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /articles/:id. Deletion is terminal; deleting a
// non-existent id yields 404, never a crash.
//
// @Summary      Delete an article
// @Tags         articles
// @Param        id  path  int  true  "Article ID"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	id, err := articleID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, id); err != nil {
		return err
	}

	metrics.ArticlesMutatedTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusOK)
}

// articleID parses the :id path parameter. A non-numeric id cannot refer
// to any article, so it maps to not-found rather than bad input.
func articleID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrArticleNotFound
	}
	return id, nil
}
