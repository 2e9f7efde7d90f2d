package domain

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format used for publication dates on the
// wire and in filters.
const DateLayout = "2006-01-02"

// Article is the core aggregate. ID is assigned by the store on creation
// and is stable for the article's lifetime; Author always denotes the
// creator and never changes; PublicationDate is set server-side to the
// creation date, truncated to UTC midnight.
type Article struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Contents        string    `json:"contents"`
	PublicationDate time.Time `json:"publication_date"`
	Author          string    `json:"author"`
}

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrNoEditPermission   = errors.New("no permission to edit article")
	ErrNoDeletePermission = errors.New("no permission to delete article")
	ErrInvalidDateFormat  = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrStorageFailure     = errors.New("storage failure")
)

// Today returns now truncated to a calendar date at UTC midnight.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
