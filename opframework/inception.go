package opframework

import "github.com/katalvlaran/tsdag/core"

// Inception accumulates Data from the beginning of the evaluated interval
// using an associative Combine — no forgetting, no eviction.
type Inception struct {
	initialized bool
	data        any
	combine     Combine
	facets      Facets
}

// NewInception constructs an Inception accumulator.
func NewInception(combine Combine, facets Facets) *Inception {
	return &Inception{combine: combine, facets: facets}
}

// Step folds wrapped into the running Data (or seeds it, on the first
// call) and returns the step's emission per the operator's Facets.
func (s *Inception) Step(wrapped any) (core.Maybe, error) {
	if !s.initialized {
		s.data = wrapped
		s.initialized = true
	} else {
		d, err := s.combine(s.data, wrapped)
		if err != nil {
			return core.None(), err
		}
		s.data = d
	}
	return emit(s.data, s.facets)
}

// Data exposes the current accumulated Data (for Extract-less callers that
// want to inspect state directly, e.g. tests).
func (s *Inception) Data() (any, bool) { return s.data, s.initialized }
