// Package readability provides a go-readability based implementation
// of readview.Extractor.
package readability

import (
	"strings"

	"github.com/fwojciec/readview"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements readview.Extractor at compile time.
var _ readview.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// It is an alternative engine to the heuristic goquery extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*readview.ExtractResult, error) {
	if rawHTML == "" {
		return nil, readview.Errorf(readview.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = "Untitled"
	}

	return &readview.ExtractResult{
		Title:       title,
		ContentHTML: article.Content,
	}, nil
}
