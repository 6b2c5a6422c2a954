package mock

import (
	"context"

	"github.com/fwojciec/readview"
)

var _ readview.Authorizer = (*Authorizer)(nil)

// Authorizer is a mock implementation of readview.Authorizer.
type Authorizer struct {
	AuthorizeFn func(ctx context.Context, credential string) error
}

func (a *Authorizer) Authorize(ctx context.Context, credential string) error {
	return a.AuthorizeFn(ctx, credential)
}
