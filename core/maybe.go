package core

// Maybe distinguishes "no tick this step" from "a value was produced",
// used as the return type of an operator's per-step emission logic before
// the scheduler folds it into the node's output Block.
type Maybe struct {
	ok    bool
	value any
}

// Some constructs a present value.
func Some(v any) Maybe { return Maybe{ok: true, value: v} }

// None constructs the absent variant.
func None() Maybe { return Maybe{} }

// IsSome reports whether a value is present.
func (m Maybe) IsSome() bool { return m.ok }

// Value returns the carried value and true, or nil and false if absent.
func (m Maybe) Value() (any, bool) { return m.value, m.ok }
