package mock

import (
	"context"

	"github.com/fwojciec/readview"
)

var _ readview.ReaderService = (*ReaderService)(nil)

// ReaderService is a mock implementation of readview.ReaderService.
type ReaderService struct {
	IngestFn func(ctx context.Context, rawURL string) (*readview.Article, error)
	ReadFn   func(ctx context.Context, id string) (*readview.ReadView, error)
}

func (s *ReaderService) Ingest(ctx context.Context, rawURL string) (*readview.Article, error) {
	return s.IngestFn(ctx, rawURL)
}

func (s *ReaderService) Read(ctx context.Context, id string) (*readview.ReadView, error) {
	return s.ReadFn(ctx, id)
}
