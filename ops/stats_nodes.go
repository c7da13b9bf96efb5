package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/align"
	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/opframework"
	"github.com/katalvlaran/tsdag/stats"
)

// Sum constructs a running-sum node over x. sum(constant(v)) folds to the
// same constant node unchanged (spec.md §4.1).
func Sum(x *dag.Node, spec WindowSpec) (*dag.Node, error) {
	if v, ok := asConstant(x); ok {
		return Constant(v), nil
	}
	op := &unaryAccumOp{
		name:      "sum",
		spec:      spec,
		facets:    opframework.Facets{Unfiltered: true, Extract: stats.SumExtract},
		wrap:      stats.SumWrap,
		combine:   stats.SumCombine,
		valueType: "float64",
	}
	return dag.Default().Obtain([]*dag.Node{x}, op)
}

// Prod constructs a running-product node over x. prod(constant(v)) folds
// to the same constant node unchanged.
func Prod(x *dag.Node, spec WindowSpec) (*dag.Node, error) {
	if v, ok := asConstant(x); ok {
		return Constant(v), nil
	}
	op := &unaryAccumOp{
		name:      "prod",
		spec:      spec,
		facets:    opframework.Facets{Unfiltered: true, Extract: stats.ProdExtract},
		wrap:      stats.ProdWrap,
		combine:   stats.ProdCombine,
		valueType: "float64",
	}
	return dag.Default().Obtain([]*dag.Node{x}, op)
}

// Mean constructs a running-mean node over x. mean(constant(v)) folds to
// the same constant node unchanged.
func Mean(x *dag.Node, spec WindowSpec) (*dag.Node, error) {
	if v, ok := asConstant(x); ok {
		return Constant(v), nil
	}
	op := &unaryAccumOp{
		name:      "mean",
		spec:      spec,
		facets:    opframework.Facets{Unfiltered: true, Extract: stats.MeanExtract},
		wrap:      stats.MeanWrap,
		combine:   stats.MeanCombine,
		valueType: "float64",
	}
	return dag.Default().Obtain([]*dag.Node{x}, op)
}

// Var constructs a running (Welford) variance node over x, ticking only
// once n > 1. var(constant(_)) is rejected with core.ErrInvalidArgument
// (spec.md §4.1: "var/cov of only-constants fail with InvalidArgument").
func Var(x *dag.Node, corrected bool, spec WindowSpec) (*dag.Node, error) {
	if _, ok := asConstant(x); ok {
		return nil, fmt.Errorf("ops.Var: variance of a constant stream: %w", core.ErrInvalidArgument)
	}
	op := &unaryAccumOp{
		name:      fmt.Sprintf("var|corrected=%t", corrected),
		spec:      spec,
		facets:    opframework.Facets{ShouldTick: stats.VarShouldTick, Extract: stats.VarExtract(corrected)},
		wrap:      stats.VarWrap,
		combine:   stats.VarCombine,
		valueType: "float64",
	}
	return dag.Default().Obtain([]*dag.Node{x}, op)
}

// Cov constructs a running (Welford cross-moment) covariance node over the
// alignment of x and y, ticking only once n > 1. cov(constant, constant)
// is rejected with core.ErrInvalidArgument.
func Cov(x, y *dag.Node, corrected bool, alignment align.Alignment, spec WindowSpec) (*dag.Node, error) {
	if _, okx := asConstant(x); okx {
		if _, oky := asConstant(y); oky {
			return nil, fmt.Errorf("ops.Cov: covariance of two constant streams: %w", core.ErrInvalidArgument)
		}
	}
	op := &binaryAccumOp{
		name:      fmt.Sprintf("cov|corrected=%t", corrected),
		alignment: alignment,
		spec:      spec,
		facets:    opframework.Facets{ShouldTick: stats.CovShouldTick, Extract: stats.CovExtract(corrected)},
		wrap:      stats.CovWrap,
		combine:   stats.CovCombine,
		valueType: "float64",
	}
	return dag.Default().Obtain([]*dag.Node{x, y}, op)
}

// Cor constructs a running Pearson correlation node over the alignment of x
// and y. Built directly from stats.Cor*, never delegating through Cov —
// resolving spec.md §9's "cor overloads delegate to cov" bug note.
func Cor(x, y *dag.Node, alignment align.Alignment, spec WindowSpec) (*dag.Node, error) {
	op := &binaryAccumOp{
		name:      "cor",
		alignment: alignment,
		spec:      spec,
		facets:    opframework.Facets{ShouldTick: stats.CorShouldTick, Extract: stats.CorExtract},
		wrap:      stats.CorWrap,
		combine:   stats.CorCombine,
		valueType: "float64",
	}
	return dag.Default().Obtain([]*dag.Node{x, y}, op)
}
