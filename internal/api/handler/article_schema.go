package handler

// errorResponse documents the standard error envelope returned on all
// 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// articleRequest is the body for create and edit. Author and publication
// date are never client-supplied.
type articleRequest struct {
	Title    string `json:"title"    validate:"required"`
	Contents string `json:"contents" validate:"required"`
}

// listArticlesQuery carries the optional listing filters. Page and PerPage
// are pointers so "absent" and "zero" stay distinguishable; pagination only
// applies when both are present.
type listArticlesQuery struct {
	AuthorName      string `query:"author_name"`
	PublicationDate string `query:"publication_date"`
	Page            *int   `query:"page"     validate:"omitempty,gte=1"`
	PerPage         *int   `query:"per_page" validate:"omitempty,gte=1,lte=10"`
}

// articleResponse is the transport representation of an article. The
// publication date is rendered as a plain calendar date.
type articleResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Contents        string `json:"contents"`
	PublicationDate string `json:"publication_date"`
	Author          string `json:"author"`
}
