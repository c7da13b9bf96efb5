package stats

// Sum and Prod are identity-wrapped: Data is the raw float64 value itself,
// Combine is the corresponding scalar operator.

// SumWrap lifts a raw float64 into Sum's Data (identity).
func SumWrap(xs ...any) any { return xs[0] }

// SumCombine folds two Sum Data values with +.
func SumCombine(a, b any) (any, error) { return a.(float64) + b.(float64), nil }

// SumExtract maps Sum's Data straight through.
func SumExtract(d any) (any, error) { return d, nil }

// ProdWrap lifts a raw float64 into Prod's Data (identity).
func ProdWrap(xs ...any) any { return xs[0] }

// ProdCombine folds two Prod Data values with ×.
func ProdCombine(a, b any) (any, error) { return a.(float64) * b.(float64), nil }

// ProdExtract maps Prod's Data straight through.
func ProdExtract(d any) (any, error) { return d, nil }
