package auth_test

import (
	"context"
	"testing"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/auth"
	"github.com/stretchr/testify/assert"
)

func TestStatic_Authorize(t *testing.T) {
	t.Parallel()

	a := auth.NewStatic("sesame")

	assert.NoError(t, a.Authorize(context.Background(), "sesame"))

	for _, credential := range []string{"", "wrong", "sesame "} {
		err := a.Authorize(context.Background(), credential)
		assert.Equal(t, readview.EUNAUTHORIZED, readview.ErrorCode(err), credential)
	}
}
