package stats

import "math"

// CorData extends the bivariate Welford wrapper with each side's own
// running sum-of-squared-deviations, so correlation can be extracted
// without a second pass — cor is still "built by composition" in spirit
// (spec.md §4.5: cor(x,y) = cov(x,y)/(std(x)*std(y))), just folded into one
// associative Data type instead of three separately-accumulated nodes, so
// the (n-1) sample-size correction cancels algebraically in CorExtract.
type CorData struct {
	N        int
	MuX, MuY float64
	SX, SY   float64
	C        float64
}

// CorWrap lifts a raw (x, y) pair into a singleton CorData.
func CorWrap(xs ...any) any {
	return CorData{N: 1, MuX: xs[0].(float64), MuY: xs[1].(float64)}
}

// CorCombine folds two CorData, applying the generalised-Welford update to
// each of SX, SY, and the cross-moment C simultaneously.
func CorCombine(a, b any) (any, error) {
	da, db := a.(CorData), b.(CorData)
	nc := da.N + db.N
	muX := da.MuX*(float64(da.N)/float64(nc)) + db.MuX*(float64(db.N)/float64(nc))
	muY := da.MuY*(float64(da.N)/float64(nc)) + db.MuY*(float64(db.N)/float64(nc))
	sx := da.SX + db.SX + float64(db.N)*(db.MuX-da.MuX)*(db.MuX-muX)
	sy := da.SY + db.SY + float64(db.N)*(db.MuY-da.MuY)*(db.MuY-muY)
	c := da.C + db.C + float64(db.N)*(db.MuX-da.MuX)*(db.MuY-muY)
	return CorData{N: nc, MuX: muX, MuY: muY, SX: sx, SY: sy, C: c}, nil
}

// CorShouldTick reports whether both sides have non-degenerate variance and
// at least two observations have accumulated.
func CorShouldTick(d any) bool {
	cd := d.(CorData)
	return cd.N > 1 && cd.SX > 0 && cd.SY > 0
}

// CorExtract computes C/sqrt(SX*SY) — the shared (n-1) sample-size
// denominator cancels between the cross-moment and the two variances, so
// no explicit division by n-1 is needed.
func CorExtract(d any) (any, error) {
	cd := d.(CorData)
	return cd.C / math.Sqrt(cd.SX*cd.SY), nil
}
