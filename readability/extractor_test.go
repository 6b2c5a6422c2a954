package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		para := strings.Repeat("Readable article body text for the extraction engine. ", 10)
		html := `<html><head><title>Readable Page</title></head><body>
			<nav>navigation links</nav>
			<article><h1>Readable Page</h1><p>` + para + `</p></article>
			<footer>footer text</footer>
		</body></html>`

		result, err := readability.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Readable Page", result.Title)
		assert.Contains(t, result.ContentHTML, "Readable article body text")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("")
		require.Error(t, err)
		assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
	})
}
