package readview

import (
	"context"
	"time"
)

// Article represents a page that was fetched and had its main content
// extracted. Articles are write-once: the store assigns the ID and the
// record is never updated afterwards.
type Article struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// ArticleService represents a service for managing stored articles.
// Implementations must be safe for use by concurrent requests.
type ArticleService interface {
	// CreateArticle stores a new article and assigns its ID.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)
}

// IDGenerator produces unique identifiers for stored articles.
// Implementations must use a cryptographically adequate random source;
// collision probability across a process lifetime must be negligible.
type IDGenerator interface {
	NewID() string
}
