package readview

import "context"

// ReaderService is the boundary the transport layer talks to: it
// ingests URLs into stored articles and produces renderable views.
type ReaderService interface {
	// Ingest validates and fetches the URL, extracts its main
	// content, and stores the result. Demo URLs and transport-level
	// fetch failures produce the fixture document instead of an
	// error; upstream HTTP failures propagate as *StatusError.
	Ingest(ctx context.Context, rawURL string) (*Article, error)

	// Read returns the renderable view of a stored article: content
	// segmented into chapters and sanitized.
	// Returns ENOTFOUND if the article does not exist.
	Read(ctx context.Context, id string) (*ReadView, error)
}
