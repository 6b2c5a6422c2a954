package sanitize_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/readview/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	s := sanitize.NewSanitizer()

	t.Run("keeps allowed markup", func(t *testing.T) {
		t.Parallel()

		in := `<div class="chapter" id="chapter-1"><h2>Title</h2><p>Text with <em>emphasis</em> and a <a href="https://example.com" title="t">link</a>.</p><ul><li>one</li></ul><img src="https://example.com/a.png" alt="pic"><br></div>`
		out, err := s.Sanitize(in)
		require.NoError(t, err)

		assert.Contains(t, out, `<div class="chapter" id="chapter-1">`)
		assert.Contains(t, out, "<h2>Title</h2>")
		assert.Contains(t, out, "<em>emphasis</em>")
		assert.Contains(t, out, `<a href="https://example.com" title="t">link</a>`)
		assert.Contains(t, out, "<li>one</li>")
		assert.Contains(t, out, `<img src="https://example.com/a.png" alt="pic">`)
	})

	t.Run("drops scripts with their content", func(t *testing.T) {
		t.Parallel()

		out, err := s.Sanitize(`<p>before</p><script>alert("xss")</script><p>after</p>`)
		require.NoError(t, err)

		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "alert")
		assert.Contains(t, out, "<p>before</p>")
		assert.Contains(t, out, "<p>after</p>")
	})

	t.Run("strips event handlers and style attributes", func(t *testing.T) {
		t.Parallel()

		out, err := s.Sanitize(`<p onclick="evil()" onmouseover="evil()" style="color:red" data-x="1" id="keep">hi</p>`)
		require.NoError(t, err)

		assert.Equal(t, `<p id="keep">hi</p>`, out)
	})

	t.Run("unwraps unknown tags keeping text", func(t *testing.T) {
		t.Parallel()

		out, err := s.Sanitize(`<article><section><p>kept</p></section></article><custom>also kept</custom>`)
		require.NoError(t, err)

		assert.Contains(t, out, "<p>kept</p>")
		assert.Contains(t, out, "also kept")
		assert.NotContains(t, out, "<article>")
		assert.NotContains(t, out, "<section>")
		assert.NotContains(t, out, "<custom>")
	})

	t.Run("rejects executable URLs", func(t *testing.T) {
		t.Parallel()

		out, err := s.Sanitize(`<a href="javascript:alert(1)">x</a><a href="/relative">y</a><img src="data:text/html;base64,xxxx">`)
		require.NoError(t, err)

		assert.NotContains(t, out, "javascript:")
		assert.NotContains(t, out, "data:")
		assert.Contains(t, out, `<a href="/relative">y</a>`)
	})

	t.Run("rejects executable URLs hidden by embedded whitespace", func(t *testing.T) {
		t.Parallel()

		// Browsers drop tab and newline when resolving URLs, so a
		// scheme split by them still executes.
		inputs := []string{
			"<a href=\"java\tscript:alert(1)\">x</a>",
			"<a href=\"java&#9;script:alert(1)\">x</a>",
			"<a href=\"java&#10;script:alert(1)\">x</a>",
			"<a href=\"\tjavascript:alert(1)\">x</a>",
			"<a href=\"java script:alert(1)\">x</a>",
			"<img src=\"da\nta:text/html;base64,xxxx\">",
		}
		for _, in := range inputs {
			out, err := s.Sanitize(in)
			require.NoError(t, err, in)

			assert.NotContains(t, out, "href=", in)
			assert.NotContains(t, out, "src=", in)
		}
	})

	t.Run("drops comments", func(t *testing.T) {
		t.Parallel()

		out, err := s.Sanitize(`<p>a</p><!-- secret -->`)
		require.NoError(t, err)
		assert.NotContains(t, out, "secret")
	})

	t.Run("adversarial inputs never leak unsafe constructs", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			`<img src="x" onerror="alert(1)">`,
			`<IMG SRC="javascript:alert(1)">`,
			`<svg onload="alert(1)"><circle/></svg>`,
			`<iframe src="https://evil.example"></iframe>`,
			`<div style="background:url(javascript:alert(1))">x</div>`,
			`<a href="JaVaScRiPt:alert(1)">click</a>`,
			`<p><script src="https://evil.example/x.js"></script></p>`,
			`<object data="x"></object><embed src="x">`,
		}
		for _, in := range inputs {
			out, err := s.Sanitize(in)
			require.NoError(t, err, in)

			lower := strings.ToLower(out)
			assert.NotContains(t, lower, "<script", in)
			assert.NotContains(t, lower, "onerror", in)
			assert.NotContains(t, lower, "onload", in)
			assert.NotContains(t, lower, "javascript:", in)
			assert.NotContains(t, lower, "style=", in)
			assert.NotContains(t, lower, "<iframe", in)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		out, err := s.Sanitize("")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
