package ops

import (
	"fmt"

	"github.com/katalvlaran/tsdag/dag"
	"github.com/katalvlaran/tsdag/opframework"
	"github.com/katalvlaran/tsdag/stats"
)

// CovMatrix constructs a running vector-valued covariance-matrix node over
// x, whose knots must carry a stats.Vector of constant dimension — a
// dimension change across ticks surfaces as core.ErrShapeMismatch during
// evaluation (spec.md §4.5 "Cov matrix... fails if input vector dimension
// changes across ticks").
func CovMatrix(x *dag.Node, corrected bool, spec WindowSpec) (*dag.Node, error) {
	op := &unaryAccumOp{
		name:      fmt.Sprintf("covmatrix|corrected=%t", corrected),
		spec:      spec,
		facets:    opframework.Facets{ShouldTick: stats.CovMatrixShouldTick, Extract: stats.CovMatrixExtract(corrected)},
		wrap:      stats.CovMatrixWrap,
		combine:   stats.CovMatrixCombine,
		valueType: "matrix",
	}
	return dag.Default().Obtain([]*dag.Node{x}, op)
}
