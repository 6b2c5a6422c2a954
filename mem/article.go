// Package mem provides an in-memory implementation of the article
// store. Records live for the lifetime of the process; there is no
// eviction.
package mem

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/readview"
)

// Ensure ArticleService implements readview.ArticleService at compile time.
var _ readview.ArticleService = (*ArticleService)(nil)

// ArticleService stores articles in a mutex-guarded map. Articles are
// write-once, so a plain RWMutex is all the coordination required
// between concurrent requests.
type ArticleService struct {
	ids readview.IDGenerator

	mu       sync.RWMutex
	articles map[string]*readview.Article
}

// NewArticleService creates an empty in-memory store. IDs are assigned
// by the given generator.
func NewArticleService(ids readview.IDGenerator) *ArticleService {
	return &ArticleService{
		ids:      ids,
		articles: make(map[string]*readview.Article),
	}
}

// CreateArticle stores a new article, assigning its ID and fetch time.
func (s *ArticleService) CreateArticle(_ context.Context, article *readview.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = s.ids.NewID()
	article.FetchedAt = time.Now().UTC()

	// Store a copy so later mutation of the caller's value cannot
	// change the stored record.
	stored := *article

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[stored.ID] = &stored
	return nil
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(_ context.Context, id string) (*readview.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[id]
	if !ok {
		return nil, readview.Errorf(readview.ENOTFOUND, "article not found")
	}

	copied := *article
	return &copied, nil
}

// Len reports the number of stored articles.
func (s *ArticleService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}
