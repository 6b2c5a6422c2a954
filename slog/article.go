package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/readview"
)

// Ensure LoggingArticleService implements readview.ArticleService.
var _ readview.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with store logging.
type LoggingArticleService struct {
	next   readview.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next readview.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// CreateArticle delegates to the wrapped service and logs the stored id.
func (s *LoggingArticleService) CreateArticle(ctx context.Context, article *readview.Article) error {
	if err := s.next.CreateArticle(ctx, article); err != nil {
		return err
	}
	s.logger.Info("article stored",
		"id", article.ID,
		"url", article.SourceURL,
		"title", article.Title,
	)
	return nil
}

// FindArticleByID delegates to the wrapped service.
func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (*readview.Article, error) {
	return s.next.FindArticleByID(ctx, id)
}
