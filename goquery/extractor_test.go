package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/readview"
	rvgoquery "github.com/fwojciec/readview/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filler produces enough text for a container to pass the minimum
// content length check.
func filler() string {
	return strings.Repeat("Some meaningful article text. ", 10)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers semantic article element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>My Page</title></head><body>
			<div class="content">` + filler() + `</div>
			<article><p>` + filler() + `</p></article>
		</body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "My Page", result.Title)
		assert.Contains(t, result.ContentHTML, "<p>")
		assert.Contains(t, result.ContentHTML, "meaningful article text")
	})

	t.Run("skips candidates below the length threshold", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article>too short</article>
			<main><p>` + filler() + `</p></main>
		</body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "meaningful article text")
		assert.NotContains(t, result.ContentHTML, "too short")
	})

	t.Run("falls back to body when no candidate qualifies", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><p>` + filler() + `</p></div></body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "meaningful article text")
	})

	t.Run("strips noise elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<script>alert(1)</script>
			<nav>site nav</nav>
			<div class="advertisement">buy things</div>
			<div class="social-share">share me</div>
			<p>` + filler() + `</p>
		</article></body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "alert(1)")
		assert.NotContains(t, result.ContentHTML, "site nav")
		assert.NotContains(t, result.ContentHTML, "buy things")
		assert.NotContains(t, result.ContentHTML, "share me")
		assert.Contains(t, result.ContentHTML, "meaningful article text")
	})

	t.Run("strips noise nested inside the selected container", func(t *testing.T) {
		t.Parallel()

		// The aside sits inside the winning container, not alongside it.
		html := `<html><body><article>
			<p>` + filler() + `</p>
			<aside class="sidebar">related links</aside>
		</article></body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "related links")
	})

	t.Run("title falls back to first h1", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Heading Title</h1><article><p>` + filler() + `</p></article></body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Heading Title", result.Title)
	})

	t.Run("title defaults to Untitled", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>` + filler() + `</p></article></body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Untitled", result.Title)
	})

	t.Run("respects rule priority order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<main><p>main wins ` + filler() + `</p></main>
			<div class="post-content"><p>post loses ` + filler() + `</p></div>
		</body></html>`

		result, err := rvgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "main wins")
		assert.NotContains(t, result.ContentHTML, "post loses")
	})

	t.Run("custom rules are honored", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article><p>` + filler() + `</p></article>
			<div class="story"><p>story text ` + filler() + `</p></div>
		</body></html>`

		e := rvgoquery.NewExtractor(rvgoquery.WithContentRules([]rvgoquery.ContentRule{
			{Name: "story", Selector: ".story"},
		}))
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "story text")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := rvgoquery.NewExtractor().Extract("")
		require.Error(t, err)
		assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
	})
}
