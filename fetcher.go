package readview

import (
	"context"
	"fmt"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response
	// body. The context controls timeout and cancellation.
	// A non-2xx response is returned as a *StatusError so callers can
	// mirror the upstream status.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// StatusError is returned by a Fetcher when the upstream server
// responded with a non-2xx status. It preserves the upstream status so
// the transport boundary can pass it through to the caller.
type StatusError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d: %s", e.StatusCode, e.Status)
}
