package readview_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/readview"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := readview.Errorf(readview.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, readview.ENOTFOUND, readview.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", readview.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, readview.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, readview.EINTERNAL, readview.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, readview.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", readview.ErrorMessage(errors.New("boom")))
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	err := &readview.StatusError{StatusCode: 404, Status: "404 Not Found"}
	assert.Contains(t, err.Error(), "404")
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		a := &readview.Article{SourceURL: "https://example.com/a", Title: "A"}
		assert.NoError(t, a.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()

		a := &readview.Article{Title: "A"}
		assert.Equal(t, readview.EINVALID, readview.ErrorCode(a.Validate()))
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		a := &readview.Article{SourceURL: "https://example.com/a"}
		assert.Equal(t, readview.EINVALID, readview.ErrorCode(a.Validate()))
	})
}
