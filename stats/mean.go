package stats

// MeanData is mean's per-event wrapper: a running count and running mean.
type MeanData struct {
	N  int
	Mu float64
}

// MeanWrap lifts a raw float64 into a singleton MeanData.
func MeanWrap(xs ...any) any {
	return MeanData{N: 1, Mu: xs[0].(float64)}
}

// MeanCombine folds two MeanData using the weighted-mean update
// (spec.md §4.5): n_c = n_a+n_b; μ_c = μ_a*(n_a/n_c) + μ_b*(n_b/n_c).
func MeanCombine(a, b any) (any, error) {
	da, db := a.(MeanData), b.(MeanData)
	nc := da.N + db.N
	mu := da.Mu*(float64(da.N)/float64(nc)) + db.Mu*(float64(db.N)/float64(nc))
	return MeanData{N: nc, Mu: mu}, nil
}

// MeanExtract returns the running mean.
func MeanExtract(d any) (any, error) { return d.(MeanData).Mu, nil }
