package mock

import "github.com/fwojciec/readview"

var _ readview.IDGenerator = (*IDGenerator)(nil)

// IDGenerator is a mock implementation of readview.IDGenerator.
type IDGenerator struct {
	NewIDFn func() string
}

func (g *IDGenerator) NewID() string {
	return g.NewIDFn()
}
