// Package matrix provides the small dense-matrix primitive backing
// stats.CovMatrix. Trimmed from the teacher's lvlath/matrix package down to
// the row-major flat-slice Dense type and the handful of operations a
// streaming vector-valued covariance combiner needs (allocate, index,
// clone, add, scale) — the teacher's adjacency/incidence/decomposition
// machinery has no consumer in this engine (see DESIGN.md).
package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDimensionMismatch indicates two matrices have incompatible shapes for
// an elementwise operation.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}
	return m.data[idx], nil
}

// Set assigns the element at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Add returns a new Dense holding m+other, element-wise.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if m.r != other.r || m.c != other.c {
		return nil, ErrDimensionMismatch
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] += v
	}
	return out, nil
}

// Scale returns a new Dense holding m scaled by k.
func (m *Dense) Scale(k float64) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= k
	}
	return out
}

// Equal reports element-wise equality (exact, no epsilon — callers compare
// with tolerance where floating error matters).
func (m *Dense) Equal(other *Dense) bool {
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
