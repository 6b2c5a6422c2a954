package mock

import (
	"context"

	"github.com/fwojciec/readview"
)

var _ readview.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of readview.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *readview.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*readview.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *readview.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*readview.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}
