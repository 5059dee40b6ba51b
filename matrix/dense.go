// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the flat buffer (Data) to solver kernels that own the bounds reasoning.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxNew      = "New"
	ctxFrom     = "NewFromSlice"
	ctxCopyFrom = "CopyFrom"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float32 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float32 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// New creates an r×c zero matrix.
// Returns ErrInvalidDimensions when rows<=0 or cols<=0; in that case no
// matrix is allocated and the caller must not proceed.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// NewVector creates an n×1 zero column vector.
func NewVector(n int) (*Dense, error) {
	return New(n, 1)
}

// NewFromSlice creates an r×c matrix holding a copy of data (row-major).
// Errors: ErrInvalidDimensions, ErrDimensionMismatch (len(data) != r*c),
// ErrNaNInf (non-finite entry).
func NewFromSlice(rows, cols int, data []float32) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFrom, ErrDimensionMismatch)
	}
	for _, v := range data {
		if !isFinite(v) {
			return nil, matrixErrorf(ctxFrom, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewVectorFrom creates a len(values)×1 column vector holding a copy of values.
func NewVectorFrom(values []float32) (*Dense, error) {
	return NewFromSlice(len(values), 1, values)
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// Data returns the row-major backing slice. Mutations are visible in m.
// Kernels use it to avoid per-element bounds checks through At/Set.
func (m *Dense) Data() []float32 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float32, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// CopyFrom overwrites m with the contents of src. Shapes must match.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf(ctxCopyFrom, ErrNilMatrix)
	}
	if m.r != src.r || m.c != src.c {
		return matrixErrorf(ctxCopyFrom, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Zero sets every element to 0.
func (m *Dense) Zero() {
	clear(m.data)
}

// String implements fmt.Stringer for debugging: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
