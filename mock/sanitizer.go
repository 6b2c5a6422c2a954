package mock

import "github.com/fwojciec/readview"

var _ readview.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of readview.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}
