package mock

import "github.com/fwojciec/readview"

var _ readview.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of readview.Segmenter.
type Segmenter struct {
	SegmentFn func(html string) (*readview.SegmentResult, error)
}

func (s *Segmenter) Segment(html string) (*readview.SegmentResult, error) {
	return s.SegmentFn(html)
}
