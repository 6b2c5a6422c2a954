// Package sanitize provides an allow-list HTML sanitizer built on
// golang.org/x/net/html.
package sanitize

import (
	"bytes"
	"strings"

	"github.com/fwojciec/readview"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements readview.Sanitizer at compile time.
var _ readview.Sanitizer = (*Sanitizer)(nil)

// AllowedTags is the full set of element names that survive
// sanitization. Everything else is either removed with its content
// (see droppedTags) or unwrapped, keeping only its children.
var AllowedTags = map[string]bool{
	"p":          true,
	"br":         true,
	"em":         true,
	"i":          true,
	"strong":     true,
	"b":          true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"a":          true,
	"blockquote": true,
	"code":       true,
	"img":        true,
	"div":        true,
	"span":       true,
}

// AllowedAttrs is the full set of attribute names that survive
// sanitization on allowed elements. Event handlers, style, and data-*
// attributes are never in this set.
var AllowedAttrs = map[string]bool{
	"href":  true,
	"src":   true,
	"alt":   true,
	"title": true,
	"class": true,
	"id":    true,
}

// droppedTags are removed together with their entire subtree; their
// text content must never leak into the output.
var droppedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"noscript": true,
	"svg":      true,
	"math":     true,
}

// voidTags render without a closing tag.
var voidTags = map[string]bool{
	"br":  true,
	"img": true,
}

// Sanitizer filters HTML down to the allow-lists above.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize parses the fragment and re-renders only allowed markup.
func (s *Sanitizer) Sanitize(fragment string) (string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", readview.Errorf(readview.EINVALID, "failed to parse HTML: %v", err)
	}

	body := findBody(doc)
	if body == nil {
		return "", nil
	}

	var buf bytes.Buffer
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		renderSafe(&buf, child)
	}
	return buf.String(), nil
}

// findBody locates the body element the parser wraps fragments in.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if body := findBody(child); body != nil {
			return body
		}
	}
	return nil
}

// renderSafe writes the sanitized form of a node to buf.
func renderSafe(buf *bytes.Buffer, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
		// Fall through to element handling below.
	default:
		// Comments, doctypes, and raw nodes are dropped.
		return
	}

	name := strings.ToLower(n.Data)

	if droppedTags[name] {
		return
	}

	if !AllowedTags[name] {
		// Unknown element: unwrap, keeping its children.
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			renderSafe(buf, child)
		}
		return
	}

	buf.WriteByte('<')
	buf.WriteString(name)
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if !AllowedAttrs[key] {
			continue
		}
		if (key == "href" || key == "src") && !safeURL(attr.Val) {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(key)
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(attr.Val))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')

	if voidTags[name] {
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		renderSafe(buf, child)
	}

	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
}

// safeURL rejects attribute URLs with executable or embedded-content
// schemes. Browsers ignore ASCII control characters and whitespace
// when resolving URLs, so they are stripped before the scheme check
// ("java\tscript:" resolves as "javascript:"). Relative URLs and
// fragments are fine.
func safeURL(raw string) bool {
	v := strings.Map(func(r rune) rune {
		if r <= ' ' || r == 0x7f {
			return -1
		}
		return r
	}, strings.ToLower(raw))
	for _, scheme := range []string{"javascript:", "vbscript:", "data:"} {
		if strings.HasPrefix(v, scheme) {
			return false
		}
	}
	return true
}
