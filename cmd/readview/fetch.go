package main

import (
	"fmt"

	"github.com/fwojciec/readview"
	rvgoquery "github.com/fwojciec/readview/goquery"
	rvhttp "github.com/fwojciec/readview/http"
	"github.com/fwojciec/readview/sanitize"
)

// Run executes the fetch command: a one-shot pass through the
// pipeline without storage, for inspecting what a URL extracts to.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if err := readview.ValidateURL(c.URL); err != nil {
		return fmt.Errorf("%s", readview.ErrorMessage(err))
	}

	fetcher := rvhttp.NewFetcher(rvhttp.WithTimeout(c.Timeout))
	defer fetcher.Close()

	html, err := fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	result, err := newExtractor(c.Extractor).Extract(html)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	segmented, err := rvgoquery.NewSegmenter().Segment(result.ContentHTML)
	if err != nil {
		return fmt.Errorf("segmentation failed: %w", err)
	}

	safe, err := sanitize.NewSanitizer().Sanitize(segmented.ContentHTML)
	if err != nil {
		return fmt.Errorf("sanitization failed: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Title: %s\n", result.Title)
	if len(segmented.Chapters) > 0 {
		fmt.Fprintln(deps.Stdout, "Chapters:")
		for _, ch := range segmented.Chapters {
			fmt.Fprintf(deps.Stdout, "  #%s  %s\n", ch.ID, ch.Title)
		}
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, safe)
	return nil
}
