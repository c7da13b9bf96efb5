package stats

// VarData is the generalised-Welford per-event wrapper: running count,
// running mean, and running sum of squared deviations.
type VarData struct {
	N  int
	Mu float64
	S  float64
}

// VarWrap lifts a raw float64 into a singleton VarData.
func VarWrap(xs ...any) any {
	return VarData{N: 1, Mu: xs[0].(float64), S: 0}
}

// VarCombine folds two VarData via generalised Welford (spec.md §4.5):
//
//	n_c = n_a + n_b
//	μ_c = weighted mean of μ_a, μ_b
//	s_c = s_a + s_b + n_b*(μ_b - μ_a)*(μ_b - μ_c)
func VarCombine(a, b any) (any, error) {
	da, db := a.(VarData), b.(VarData)
	nc := da.N + db.N
	mu := da.Mu*(float64(da.N)/float64(nc)) + db.Mu*(float64(db.N)/float64(nc))
	s := da.S + db.S + float64(db.N)*(db.Mu-da.Mu)*(db.Mu-mu)
	return VarData{N: nc, Mu: mu, S: s}, nil
}

// VarShouldTick reports whether enough observations have accumulated to
// define a sample variance (n > 1) — spec.md: "Ticks only when n > 1".
func VarShouldTick(d any) bool { return d.(VarData).N > 1 }

// VarExtract returns an Extract function dividing S by (n-1) when corrected
// is true (sample variance), or by n otherwise (population variance).
func VarExtract(corrected bool) func(any) (any, error) {
	return func(d any) (any, error) {
		vd := d.(VarData)
		denom := float64(vd.N)
		if corrected {
			denom = float64(vd.N - 1)
		}
		return vd.S / denom, nil
	}
}
