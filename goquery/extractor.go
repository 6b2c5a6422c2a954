// Package goquery provides goquery-based implementations of content
// extraction and chapter segmentation.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readview"
)

// Ensure Extractor implements readview.Extractor at compile time.
var _ readview.Extractor = (*Extractor)(nil)

// DefaultMinContentLen is the minimum rendered text length a candidate
// container must exceed to be accepted as the main content.
const DefaultMinContentLen = 100

// noiseSelectors match elements that never belong to article content.
// They are stripped before the content search and again from the
// selected fragment, since noise can nest inside the chosen container.
var noiseSelectors = []string{
	"script",
	"style",
	"noscript",
	"nav",
	"header",
	"footer",
	"aside",
	"iframe",
	"form",
	".advertisement",
	".ads",
	".ad",
	".ad-banner",
	".social",
	".social-share",
	".share-buttons",
	".sidebar",
	".related-posts",
	".comments",
}

// ContentRule is one candidate selector for the main article container.
// Rules are evaluated in slice order; the first rule whose matched
// element's text length exceeds the minimum wins. The order encodes a
// bet about common page structures and ties break by first match, not
// best match.
type ContentRule struct {
	Name     string
	Selector string
}

// DefaultContentRules returns the content search order: semantic
// elements first, then common class and id conventions.
func DefaultContentRules() []ContentRule {
	return []ContentRule{
		{Name: "article", Selector: "article"},
		{Name: "role-main", Selector: "[role=\"main\"]"},
		{Name: "main", Selector: "main"},
		{Name: "article-content", Selector: ".article-content"},
		{Name: "post-content", Selector: ".post-content"},
		{Name: "entry-content", Selector: ".entry-content"},
		{Name: "article-body", Selector: ".article-body"},
		{Name: "post", Selector: ".post"},
		{Name: "content-id", Selector: "#content"},
		{Name: "content-class", Selector: ".content"},
	}
}

// Extractor locates the main article content in an HTML document using
// an ordered list of heuristic selector rules.
type Extractor struct {
	rules      []ContentRule
	minContent int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithContentRules replaces the default content search rules.
func WithContentRules(rules []ContentRule) ExtractorOption {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// WithMinContentLen sets the text length a candidate must exceed.
func WithMinContentLen(n int) ExtractorOption {
	return func(e *Extractor) {
		e.minContent = n
	}
}

// NewExtractor creates a new Extractor with the default rules.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		rules:      DefaultContentRules(),
		minContent: DefaultMinContentLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the title and main content.
func (e *Extractor) Extract(rawHTML string) (*readview.ExtractResult, error) {
	if rawHTML == "" {
		return nil, readview.Errorf(readview.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readview.Errorf(readview.EINVALID, "failed to parse HTML: %v", err)
	}

	// Resolve the title before stripping noise; the first h1 may live
	// inside a header element.
	title := extractTitle(doc)

	stripNoise(doc.Selection)

	var content string
	for _, rule := range e.rules {
		sel := doc.Find(rule.Selector).First()
		if sel.Length() == 0 {
			continue
		}
		if len(strings.TrimSpace(sel.Text())) <= e.minContent {
			continue
		}
		content, err = sel.Html()
		if err != nil {
			return nil, readview.Errorf(readview.EINTERNAL, "failed to render content: %v", err)
		}
		break
	}

	if content == "" {
		content, err = doc.Find("body").Html()
		if err != nil {
			return nil, readview.Errorf(readview.EINTERNAL, "failed to render body: %v", err)
		}
	}

	// The chosen fragment is reparsed and stripped again: noise nested
	// inside the selected container survives the document-level pass.
	content, err = stripNoiseFromFragment(content)
	if err != nil {
		return nil, err
	}

	return &readview.ExtractResult{
		Title:       title,
		ContentHTML: content,
	}, nil
}

// extractTitle resolves the document title: <title> text, else the
// first <h1> text, else "Untitled".
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return "Untitled"
}

// stripNoise removes all noise elements from the selection in place.
func stripNoise(sel *goquery.Selection) {
	sel.Find(strings.Join(noiseSelectors, ", ")).Remove()
}

// stripNoiseFromFragment reparses an HTML fragment and strips noise
// elements from it.
func stripNoiseFromFragment(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", readview.Errorf(readview.EINVALID, "failed to parse content fragment: %v", err)
	}
	stripNoise(doc.Selection)
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", readview.Errorf(readview.EINTERNAL, "failed to render content fragment: %v", err)
	}
	return out, nil
}
