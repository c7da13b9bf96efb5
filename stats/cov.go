package stats

// CovData is the generalised-Welford per-event wrapper for a running
// bivariate covariance: count, both running means, and running
// cross-moment.
type CovData struct {
	N        int
	MuX, MuY float64
	C        float64
}

// CovWrap lifts a raw (x, y) pair into a singleton CovData.
func CovWrap(xs ...any) any {
	return CovData{N: 1, MuX: xs[0].(float64), MuY: xs[1].(float64), C: 0}
}

// CovCombine folds two CovData via the cross-moment generalisation of
// Welford's update (spec.md §4.5, resolving the §9 FIXME by re-deriving
// against the combined mean μ_yc rather than the pre-combine μ_yb):
//
//	n_c    = n_a + n_b
//	μ_xc,  μ_yc = weighted means
//	c_c    = c_a + c_b + n_b*(μ_xb - μ_xa)*(μ_yb - μ_yc)
func CovCombine(a, b any) (any, error) {
	da, db := a.(CovData), b.(CovData)
	nc := da.N + db.N
	muX := da.MuX*(float64(da.N)/float64(nc)) + db.MuX*(float64(db.N)/float64(nc))
	muY := da.MuY*(float64(da.N)/float64(nc)) + db.MuY*(float64(db.N)/float64(nc))
	c := da.C + db.C + float64(db.N)*(db.MuX-da.MuX)*(db.MuY-muY)
	return CovData{N: nc, MuX: muX, MuY: muY, C: c}, nil
}

// CovShouldTick reports whether enough observations have accumulated for a
// sample covariance (n > 1).
func CovShouldTick(d any) bool { return d.(CovData).N > 1 }

// CovExtract returns an Extract function dividing C by (n-1) when
// corrected is true (sample covariance), or by n otherwise.
func CovExtract(corrected bool) func(any) (any, error) {
	return func(d any) (any, error) {
		cd := d.(CovData)
		denom := float64(cd.N)
		if corrected {
			denom = float64(cd.N - 1)
		}
		return cd.C / denom, nil
	}
}
