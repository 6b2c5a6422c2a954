package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/auth"
	rvgoquery "github.com/fwojciec/readview/goquery"
	rvhttp "github.com/fwojciec/readview/http"
	"github.com/fwojciec/readview/ingest"
	"github.com/fwojciec/readview/mem"
	"github.com/fwojciec/readview/sanitize"
	rvslog "github.com/fwojciec/readview/slog"
	"github.com/fwojciec/readview/sqlite"
	"github.com/fwojciec/readview/uuid"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout is how long in-flight requests get to finish.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
	ids := uuid.NewGenerator()

	var articles readview.ArticleService
	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()
		articles = sqlite.NewArticleService(db, ids)
	} else {
		articles = mem.NewArticleService(ids)
	}

	fetcherOpts := []rvhttp.FetcherOption{rvhttp.WithTimeout(c.Timeout)}
	if c.RecheckDNS {
		fetcherOpts = append(fetcherOpts, rvhttp.WithPrivateIPRecheck())
	}
	fetcher := rvhttp.NewFetcher(fetcherOpts...)
	defer fetcher.Close()

	pipeline := &ingest.Pipeline{
		Fetcher:   rvslog.NewLoggingFetcher(fetcher, logger),
		Extractor: newExtractor(c.Extractor),
		Segmenter: rvgoquery.NewSegmenter(),
		Sanitizer: sanitize.NewSanitizer(),
		Articles:  rvslog.NewLoggingArticleService(articles, logger),
	}

	serverOpts := []rvhttp.ServerOption{rvhttp.WithLogger(logger)}
	if c.Token != "" {
		serverOpts = append(serverOpts, rvhttp.WithAuthorizer(auth.NewStatic(c.Token)))
	}
	if c.IngestRPS > 0 {
		serverOpts = append(serverOpts, rvhttp.WithIngestRateLimit(c.IngestRPS, 1))
	}

	httpServer := &http.Server{
		Addr:              c.Addr,
		Handler:           rvhttp.NewServer(pipeline, serverOpts...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", c.Addr, "extractor", c.Extractor)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
