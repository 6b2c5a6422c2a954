package uuid_test

import (
	"testing"

	gouuid "github.com/google/uuid"

	"github.com/fwojciec/readview/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := uuid.NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.NewID()

		parsed, err := gouuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, gouuid.Version(4), parsed.Version())

		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
