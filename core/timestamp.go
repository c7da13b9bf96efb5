package core

import "fmt"

// Timestamp is a monotonic wall-time value at millisecond resolution.
// The core treats Timestamp as an opaque ordered scalar: no timezone or
// calendar semantics apply here (those live in external collaborators,
// e.g. a date-iterating source constructor).
type Timestamp int64

// Before reports whether t occurs strictly before other.
func (t Timestamp) Before(other Timestamp) bool { return t < other }

// String renders the raw millisecond count for diagnostics.
func (t Timestamp) String() string {
	return fmt.Sprintf("t%d", int64(t))
}
