package readview

// ChapterTitleMaxLen is the display length limit for chapter titles.
// Longer titles are truncated and marked with an ellipsis.
const ChapterTitleMaxLen = 50

// Chapter represents one entry in an article's table of contents.
// Chapters are derived from stored content at read time and are not
// persisted.
type Chapter struct {
	// ID is the anchor id of the chapter container in the processed
	// HTML. Unique and stable within one document.
	ID string `json:"id"`

	// Title is the display title, at most ChapterTitleMaxLen runes
	// plus an ellipsis marker when truncated.
	Title string `json:"title"`
}

// SegmentResult holds content after chapter segmentation.
type SegmentResult struct {
	// ContentHTML is the processed document with chapter containers
	// injected. Still unsanitized.
	ContentHTML string

	// Chapters lists detected chapters in document order.
	Chapters []Chapter
}

// Segmenter detects chapters in extracted content and reflows
// preformatted text into paragraphs.
type Segmenter interface {
	Segment(html string) (*SegmentResult, error)
}
