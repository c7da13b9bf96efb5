package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/opframework"
)

// WindowSpec selects the accumulation scope a statistical node constructor
// (Mean/Var/Sum/Prod/Cov/Cor/CovMatrix/History) runs through: accumulate
// from inception, a fixed-count window, or a time-duration window —
// spec.md §4.5's three opframework wrappers.
type WindowSpec struct {
	kind         dag.AccumKind
	window       int
	windowMillis int64
	emitEarly    bool
}

// Inception accumulates from the start of the evaluated interval, never
// forgetting.
func Inception() WindowSpec { return WindowSpec{kind: dag.InceptionAccum} }

// FixedWindowOf retains the most recent n events.
func FixedWindowOf(n int, emitEarly bool) WindowSpec {
	return WindowSpec{kind: dag.FixedWindowAccum, window: n, emitEarly: emitEarly}
}

// TimeWindowOf retains events within millis of the latest tick.
func TimeWindowOf(millis int64, emitEarly bool) WindowSpec {
	return WindowSpec{kind: dag.TimeWindowAccum, windowMillis: millis, emitEarly: emitEarly}
}

// unaryAccumOp adapts a stats Wrap/Combine/Extract triple into
// dag.AccumulatingOp for a single-parent statistical node.
type unaryAccumOp struct {
	name      string
	spec      WindowSpec
	facets    opframework.Facets
	wrap      opframework.Wrap
	combine   opframework.Combine
	valueType string
}

func (o *unaryAccumOp) Key() string {
	return fmt.Sprintf("%s|kind=%d|window=%d|windowMs=%d|emitEarly=%t",
		o.name, o.spec.kind, o.spec.window, o.spec.windowMillis, o.spec.emitEarly)
}
func (o *unaryAccumOp) ValueType() string              { return o.valueType }
func (o *unaryAccumOp) Kind() dag.AccumKind             { return o.spec.kind }
func (o *unaryAccumOp) Facets() opframework.Facets      { return o.facets }
func (o *unaryAccumOp) Wrap() opframework.Wrap          { return o.wrap }
func (o *unaryAccumOp) Combine() opframework.Combine    { return o.combine }
func (o *unaryAccumOp) Window() int                     { return o.spec.window }
func (o *unaryAccumOp) WindowMillis() int64             { return o.spec.windowMillis }
func (o *unaryAccumOp) EmitEarly() bool                 { return o.spec.emitEarly }

// binaryAccumOp adapts a stats Wrap/Combine/Extract triple into
// dag.BinaryAccumulatingOp for a two-parent statistical node (Cov, Cor):
// parents are first aligned (align.Merge), then each (x, y) pair is folded
// through the same three opframework wrappers unaryAccumOp uses.
type binaryAccumOp struct {
	name      string
	alignment align.Alignment
	initial   *align.Initial
	spec      WindowSpec
	facets    opframework.Facets
	wrap      opframework.Wrap
	combine   opframework.Combine
	valueType string
}

func (o *binaryAccumOp) Key() string {
	return fmt.Sprintf("%s|align=%s|%s|kind=%d|window=%d|windowMs=%d|emitEarly=%t",
		o.name, o.alignment, initialKey(o.initial), o.spec.kind, o.spec.window, o.spec.windowMillis, o.spec.emitEarly)
}
func (o *binaryAccumOp) ValueType() string              { return o.valueType }
func (o *binaryAccumOp) Alignment() align.Alignment      { return o.alignment }
func (o *binaryAccumOp) Initial() *align.Initial         { return o.initial }
func (o *binaryAccumOp) Kind() dag.AccumKind              { return o.spec.kind }
func (o *binaryAccumOp) Facets() opframework.Facets       { return o.facets }
func (o *binaryAccumOp) Wrap() opframework.Wrap           { return o.wrap }
func (o *binaryAccumOp) Combine() opframework.Combine     { return o.combine }
func (o *binaryAccumOp) Window() int                      { return o.spec.window }
func (o *binaryAccumOp) WindowMillis() int64              { return o.spec.windowMillis }
func (o *binaryAccumOp) EmitEarly() bool                  { return o.spec.emitEarly }
