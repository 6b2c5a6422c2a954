package readview

// ExtractResult holds the extracted content from an HTML page.
// The content is raw, unsanitized HTML; it must pass through a
// Sanitizer before it is rendered to a user.
type ExtractResult struct {
	// Title is the page title. Falls back to "Untitled" when the page
	// declares none.
	Title string

	// ContentHTML is the main content as HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}
