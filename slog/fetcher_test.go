package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/readview/mock"
	rvslog "github.com/fwojciec/readview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		f := rvslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		}, logger)

		html, err := f.Fetch(context.Background(), "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "https://example.com/a")
	})

	t.Run("logs failures and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		want := errors.New("connection reset")
		f := rvslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", want
			},
		}, logger)

		_, err := f.Fetch(context.Background(), "https://example.com/a")
		assert.ErrorIs(t, err, want)
		assert.Contains(t, buf.String(), "fetch failed")
	})
}
