package stats

import (
	"fmt"

	"github.com/katalvlaran/tsdag/core"
	"github.com/katalvlaran/tsdag/matrix"
)

// CovMatrixData is the vector-valued generalisation of CovData: a running
// count, a running mean vector, and a running second-moment Dense matrix
// (C[i][j] accumulates the cross-moment between dimensions i and j exactly
// as CovData.C does for a single pair).
type CovMatrixData struct {
	N  int
	Mu Vector
	C  *matrix.Dense
}

// CovMatrixWrap lifts a single Vector observation into a singleton
// CovMatrixData — the running matrix starts at zero (no cross-moment yet
// with only one observation).
func CovMatrixWrap(xs ...any) any {
	v := xs[0].(Vector)
	dim := len(v)
	c, _ := matrix.NewDense(dim, dim) // dim > 0 guaranteed by caller construction
	return CovMatrixData{N: 1, Mu: v.Clone(), C: c}
}

// CovMatrixCombine folds two CovMatrixData element-wise using the same
// generalised-Welford cross-moment update CovCombine uses per scalar pair,
// applied to every (i, j) entry of the second-moment matrix. Returns
// core.ErrShapeMismatch if the two operands' dimensions disagree.
func CovMatrixCombine(a, b any) (any, error) {
	da, db := a.(CovMatrixData), b.(CovMatrixData)
	dim := len(da.Mu)
	if len(db.Mu) != dim || db.C.Rows() != dim || db.C.Cols() != dim {
		return nil, fmt.Errorf("stats.CovMatrixCombine: dim %d vs %d: %w", dim, len(db.Mu), core.ErrShapeMismatch)
	}
	nc := da.N + db.N
	muC := make(Vector, dim)
	for i := 0; i < dim; i++ {
		muC[i] = da.Mu[i]*(float64(da.N)/float64(nc)) + db.Mu[i]*(float64(db.N)/float64(nc))
	}
	out, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			cAij, err := da.C.At(i, j)
			if err != nil {
				return nil, err
			}
			cBij, err := db.C.At(i, j)
			if err != nil {
				return nil, err
			}
			cij := cAij + cBij + float64(db.N)*(db.Mu[i]-da.Mu[i])*(db.Mu[j]-muC[j])
			if err := out.Set(i, j, cij); err != nil {
				return nil, err
			}
		}
	}
	return CovMatrixData{N: nc, Mu: muC, C: out}, nil
}

// CovMatrixShouldTick reports whether enough observations have accumulated
// (n > 1) — below that the second-moment matrix is defined but trivially
// zero everywhere.
func CovMatrixShouldTick(d any) bool { return d.(CovMatrixData).N > 1 }

// CovMatrixExtract returns an Extract function scaling C by 1/(n-1)
// (corrected, sample covariance matrix) or 1/n (population).
func CovMatrixExtract(corrected bool) func(any) (any, error) {
	return func(d any) (any, error) {
		cd := d.(CovMatrixData)
		denom := float64(cd.N)
		if corrected {
			denom = float64(cd.N - 1)
		}
		return cd.C.Scale(1 / denom), nil
	}
}
