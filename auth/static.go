// Package auth provides a minimal static-token Authorizer. Real
// account management is outside the service; the pipeline only needs
// a yes/no answer for a presented credential.
package auth

import (
	"context"
	"crypto/subtle"

	"github.com/fwojciec/readview"
)

// Ensure Static implements readview.Authorizer at compile time.
var _ readview.Authorizer = (*Static)(nil)

// Static authorizes callers that present a fixed token. The comparison
// is constant-time.
type Static struct {
	token string
}

// NewStatic creates a Static authorizer for the given token.
func NewStatic(token string) *Static {
	return &Static{token: token}
}

// Authorize returns nil when the credential matches the token.
func (s *Static) Authorize(_ context.Context, credential string) error {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(s.token)) == 1 {
		return nil
	}
	return readview.Errorf(readview.EUNAUTHORIZED, "invalid credentials")
}
