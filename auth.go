package readview

import "context"

// Authorizer verifies that a caller is allowed to use the service.
// Authentication itself (credentials, token issuance) is an external
// collaborator; the pipeline only needs this check.
type Authorizer interface {
	// Authorize returns nil if the credential is valid and
	// EUNAUTHORIZED otherwise.
	Authorize(ctx context.Context, credential string) error
}
