package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/dag"
)

// binOp implements dag.BinaryAlignedOp for a pure scalar-pair combine
// function — the shape every arithmetic operator (Add/Sub/Mul/Div) and
// Coalign's internal plumbing (scheduleJoin, project) share.
type binOp struct {
	name      string
	alignment align.Alignment
	initial   *align.Initial
	fn        func(x, y any) (any, error)
	valueType string
}

func (o *binOp) Key() string {
	return fmt.Sprintf("%s|align=%s|%s", o.name, o.alignment, initialKey(o.initial))
}
func (o *binOp) ValueType() string                  { return o.valueType }
func (o *binOp) Alignment() align.Alignment         { return o.alignment }
func (o *binOp) Initial() *align.Initial            { return o.initial }
func (o *binOp) Combine(x, y any) (any, error)      { return o.fn(x, y) }

func initialKey(initial *align.Initial) string {
	if initial == nil {
		return "init=none"
	}
	return fmt.Sprintf("init=(%v,%v,%t,%t)", initial.X, initial.Y, initial.HasX, initial.HasY)
}

// scalarFn lifts a float64-pair function into the any-typed Combine shape
// binOp needs, type-asserting both operands first.
func scalarFn(fn func(a, b float64) (float64, error)) func(x, y any) (any, error) {
	return func(x, y any) (any, error) {
		xf, err := toFloat(x)
		if err != nil {
			return nil, err
		}
		yf, err := toFloat(y)
		if err != nil {
			return nil, err
		}
		return fn(xf, yf)
	}
}

func arith(name string, fn func(a, b float64) (float64, error), x, y any, opts ...Option) (*dag.Node, error) {
	xn, yn := toNode(x), toNode(y)
	cfg := resolveOptions(opts)

	if xv, ok := asConstant(xn); ok {
		if yv, ok2 := asConstant(yn); ok2 {
			xf, err := toFloat(xv)
			if err != nil {
				return nil, err
			}
			yf, err := toFloat(yv)
			if err != nil {
				return nil, err
			}
			rv, err := fn(xf, yf)
			if err != nil {
				return nil, err
			}
			return Constant(rv), nil
		}
	}

	op := &binOp{name: name, alignment: cfg.alignment, initial: cfg.initial, fn: scalarFn(fn), valueType: "float64"}
	return dag.Default().Obtain([]*dag.Node{xn, yn}, op)
}

// Add constructs x+y, aligned per opts (default UNION). x and y may be
// *dag.Node or a scalar (lifted to a Constant node).
func Add(x, y any, opts ...Option) (*dag.Node, error) {
	return arith("add", func(a, b float64) (float64, error) { return a + b, nil }, x, y, opts...)
}

// Sub constructs x-y.
func Sub(x, y any, opts ...Option) (*dag.Node, error) {
	return arith("sub", func(a, b float64) (float64, error) { return a - b, nil }, x, y, opts...)
}

// Mul constructs x*y.
func Mul(x, y any, opts ...Option) (*dag.Node, error) {
	return arith("mul", func(a, b float64) (float64, error) { return a * b, nil }, x, y, opts...)
}

// Div constructs x/y.
func Div(x, y any, opts ...Option) (*dag.Node, error) {
	return arith("div", func(a, b float64) (float64, error) { return a / b, nil }, x, y, opts...)
}
