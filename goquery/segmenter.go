package goquery

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readview"
)

// Ensure Segmenter implements readview.Segmenter at compile time.
var _ readview.Segmenter = (*Segmenter)(nil)

// chapterMarkerRe matches paragraphs that open a chapter: a leading,
// case-insensitive "Chapter <number>" or "Part <number>". The
// mandatory whitespace keeps words like "Chapterhouse" from matching,
// and the trailing boundary keeps "Chapter 12xyz" out.
var chapterMarkerRe = regexp.MustCompile(`(?i)^(chapter|part)\s+\d+\b`)

// paragraphBreakRe matches runs of two or more newlines, optionally
// interspersed with horizontal whitespace. Such runs separate
// paragraphs in preformatted text.
var paragraphBreakRe = regexp.MustCompile(`\n[ \t]*(?:\n[ \t]*)+`)

// spaceRunRe collapses runs of horizontal whitespace during reflow.
var spaceRunRe = regexp.MustCompile(`[ \t]+`)

// Segmenter detects chapters in extracted content. It runs two passes:
// every preformatted block becomes a chapter with its text reflowed
// into paragraphs, then remaining paragraphs whose text opens with a
// chapter marker are promoted into chapter containers. Chapter indices
// continue across both passes and anchor ids stay unique within one
// document.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment processes extracted HTML and returns it with chapter
// containers injected, along with the chapter list in document order.
func (s *Segmenter) Segment(rawHTML string) (*readview.SegmentResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readview.Errorf(readview.EINVALID, "failed to parse HTML: %v", err)
	}

	// Ids already present in the source must not be reused: a document
	// that arrives with its own id="chapter-1" would otherwise collide
	// with a generated anchor.
	taken := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok {
			taken[id] = true
		}
	})

	n := 0
	titles := make(map[string]string)
	nextID := func() string {
		for {
			n++
			id := fmt.Sprintf("chapter-%d", n)
			if !taken[id] {
				taken[id] = true
				return id
			}
		}
	}

	// Pass 1: preformatted blocks become reflowed chapters.
	doc.Find("pre").Each(func(_ int, sel *goquery.Selection) {
		id := nextID()

		text := normalizeNewlines(sel.Text())
		title := firstLineTitle(text)
		if title == "" {
			title = fmt.Sprintf("Chapter %d", n)
		}
		titles[id] = title

		var b strings.Builder
		fmt.Fprintf(&b, "<div class=%q id=%q>", "chapter", id)
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(title))
		for _, para := range Reflow(text) {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(para))
		}
		b.WriteString("</div>")

		sel.ReplaceWithHtml(b.String())
	})

	// Pass 2: marker paragraphs outside existing chapters are promoted.
	// The tag-stripped text is used for matching and the display title
	// only; the original markup is what gets rendered.
	var pass2Err error
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if pass2Err != nil {
			return
		}
		if sel.ParentsFiltered("div.chapter").Length() > 0 {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if !chapterMarkerRe.MatchString(text) {
			return
		}

		id := nextID()
		titles[id] = truncateTitle(text)

		markup, err := goquery.OuterHtml(sel)
		if err != nil {
			pass2Err = readview.Errorf(readview.EINTERNAL, "failed to render paragraph: %v", err)
			return
		}
		sel.ReplaceWithHtml(fmt.Sprintf("<div class=%q id=%q>%s</div>", "chapter", id, markup))
	})
	if pass2Err != nil {
		return nil, pass2Err
	}

	// The chapter list follows document order over the processed
	// document, merging both passes.
	var chapters []readview.Chapter
	doc.Find("div.chapter").Each(func(_ int, sel *goquery.Selection) {
		id, ok := sel.Attr("id")
		if !ok {
			return
		}
		if title, ok := titles[id]; ok {
			chapters = append(chapters, readview.Chapter{ID: id, Title: title})
		}
	})

	content, err := doc.Find("body").Html()
	if err != nil {
		return nil, readview.Errorf(readview.EINTERNAL, "failed to render content: %v", err)
	}

	return &readview.SegmentResult{
		ContentHTML: content,
		Chapters:    chapters,
	}, nil
}

// Reflow converts preformatted text into flowing paragraphs. Runs of
// two or more newlines delimit paragraphs; single newlines within a
// paragraph collapse to a space, and space runs collapse to one.
func Reflow(text string) []string {
	text = normalizeNewlines(text)

	var paragraphs []string
	for _, block := range paragraphBreakRe.Split(text, -1) {
		para := strings.ReplaceAll(block, "\n", " ")
		para = spaceRunRe.ReplaceAllString(para, " ")
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		paragraphs = append(paragraphs, para)
	}
	return paragraphs
}

// normalizeNewlines converts CRLF and bare CR line endings to LF.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// firstLineTitle returns the trimmed, length-limited first line of a
// preformatted block, or "" when the line is empty after trimming.
func firstLineTitle(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	return truncateTitle(line)
}

// truncateTitle limits a title to readview.ChapterTitleMaxLen runes,
// appending an ellipsis when it was cut.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= readview.ChapterTitleMaxLen {
		return title
	}
	return strings.TrimSpace(string(runes[:readview.ChapterTitleMaxLen])) + "…"
}
