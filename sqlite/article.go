package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readview"
)

// Compile-time interface verification.
var _ readview.ArticleService = (*ArticleService)(nil)

// ArticleService implements readview.ArticleService using SQLite.
type ArticleService struct {
	db  *DB
	ids readview.IDGenerator
}

// NewArticleService creates a new ArticleService. IDs are assigned by
// the given generator.
func NewArticleService(db *DB, ids readview.IDGenerator) *ArticleService {
	return &ArticleService{db: db, ids: ids}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateArticle stores a new article, assigning its ID and fetch time.
func (s *ArticleService) CreateArticle(ctx context.Context, article *readview.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = s.ids.NewID()
	article.FetchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, source_url, title, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceURL, article.Title, article.Content,
		hashContent(article.Content), article.FetchedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*readview.Article, error) {
	var article readview.Article
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, fetched_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.SourceURL, &article.Title, &article.Content, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, readview.Errorf(readview.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &article, nil
}
