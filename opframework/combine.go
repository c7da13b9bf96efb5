// Package opframework provides the generic unary/binary operator
// wrappers — inception, fixed-count window, time window — that turn a
// per-event Data type plus an associative Combine function into a stateful
// node operator. Every statistical operator in package stats except EMA is
// expressed as one of these wrappers parameterized by (Wrap, Combine,
// Extract).
//
// The associative-window machinery (queue.go) is the "classic two stacks"
// trick named in spec.md §4.5 (sometimes credited to the Banker's-queue /
// SWAG literature): pushing onto one stack and folding onto the other gives
// amortised O(1) push/evict/value for any associative (not necessarily
// commutative) Combine.
package opframework

import "github.com/katalvlaran/tsdag/core"

// Combine folds two Data values into one, in temporal order: a is always
// the earlier-observed operand, b the later one. Must be associative.
type Combine func(a, b any) (any, error)

// Wrap lifts raw per-event inputs into the operator's Data type.
type Wrap func(xs ...any) any

// Extract maps the accumulated Data to the value a node actually emits.
type Extract func(data any) (any, error)

// ShouldTick is the per-step emission predicate consulted when an operator
// is not Unfiltered and does not AlwaysTick.
type ShouldTick func(data any) bool

// Facets bundles the small vocabulary of operator behaviour toggles from
// spec.md §4.5. The zero value is the most conservative operator: it never
// ticks unless ShouldTick says so.
type Facets struct {
	// AlwaysTicks: every input tick produces an output tick.
	AlwaysTicks bool
	// TimeAgnostic: the computation does not consult knot time (diagnostic
	// only here; real schedulers could use it to skip time bookkeeping).
	TimeAgnostic bool
	// ValueAgnostic: output does not depend on the input value.
	ValueAgnostic bool
	// Unfiltered: _should_tick is unconditionally true.
	Unfiltered bool
	// ShouldTick is consulted when neither AlwaysTicks nor Unfiltered apply.
	ShouldTick ShouldTick
	// Extract maps internal Data to the emitted value.
	Extract Extract
}

// emit applies the Facets emission rule to accumulated Data, returning
// core.Some(extracted) or core.None().
func emit(data any, f Facets) (core.Maybe, error) {
	tick := f.AlwaysTicks || f.Unfiltered
	if !tick && f.ShouldTick != nil {
		tick = f.ShouldTick(data)
	}
	if !tick {
		return core.None(), nil
	}
	v, err := f.Extract(data)
	if err != nil {
		return core.None(), err
	}
	return core.Some(v), nil
}

// EmitWindow applies the window-operator emission rule (spec.md §4.5):
// tick iff AlwaysTicks, or ((emitEarly || full) && (Unfiltered ||
// ShouldTick(value))). hasValue false (an empty window) never ticks.
func EmitWindow(value any, hasValue bool, full, emitEarly bool, f Facets) (core.Maybe, error) {
	if !hasValue {
		return core.None(), nil
	}
	if f.AlwaysTicks {
		v, err := f.Extract(value)
		if err != nil {
			return core.None(), err
		}
		return core.Some(v), nil
	}
	if !(emitEarly || full) {
		return core.None(), nil
	}
	if !f.Unfiltered && (f.ShouldTick == nil || !f.ShouldTick(value)) {
		return core.None(), nil
	}
	v, err := f.Extract(value)
	if err != nil {
		return core.None(), err
	}
	return core.Some(v), nil
}
