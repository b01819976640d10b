// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Matrix is a sparse binary matrix stored as one roaring bitmap per row.
// Rows are appended, never removed; a built Matrix is safe for concurrent
// readers.
type Matrix struct {
	cols int
	rows []*roaring.Bitmap
}

// NewMatrix returns an empty matrix with the given column count.
func NewMatrix(cols int) (*Matrix, error) {
	if cols < 0 {
		return nil, fmt.Errorf("NewMatrix(%d): %w", cols, ErrBadLength)
	}
	return &Matrix{cols: cols}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// AppendRow appends a row with the listed columns set.
// Repeated columns toggle, matching GF(2) addition.
func (m *Matrix) AppendRow(ones ...int) error {
	row := roaring.New()
	for _, c := range ones {
		if c < 0 || c >= m.cols {
			return fmt.Errorf("Matrix.AppendRow(col=%d) cols=%d: %w", c, m.cols, ErrOutOfRange)
		}
		if !row.CheckedAdd(uint32(c)) {
			row.Remove(uint32(c))
		}
	}
	row.RunOptimize()
	m.rows = append(m.rows, row)
	return nil
}

// AppendVector appends v as a new row.
func (m *Matrix) AppendVector(v *Vector) error {
	if v == nil {
		return gf2Errorf("Matrix.AppendVector", ErrNilOperand)
	}
	if v.n != m.cols {
		return fmt.Errorf("Matrix.AppendVector(%d) cols=%d: %w", v.n, m.cols, ErrDimensionMismatch)
	}
	row := roaring.New()
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		row.Add(uint32(i))
	}
	m.rows = append(m.rows, row)
	return nil
}

// At reports entry (i, j).
func (m *Matrix) At(i, j int) (bool, error) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return false, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	return m.rows[i].Contains(uint32(j)), nil
}

// RowOnes returns the set columns of row i in increasing order.
func (m *Matrix) RowOnes(i int) ([]int, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Matrix.RowOnes(%d): %w", i, ErrOutOfRange)
	}
	arr := m.rows[i].ToArray()
	out := make([]int, len(arr))
	for k, c := range arr {
		out[k] = int(c)
	}
	return out, nil
}

// RowVector returns a dense copy of row i.
func (m *Matrix) RowVector(i int) (*Vector, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Matrix.RowVector(%d): %w", i, ErrOutOfRange)
	}
	v := newVector(m.cols)
	m.rows[i].Iterate(func(c uint32) bool {
		v.bits.Set(uint(c))
		return true
	})
	return v, nil
}

// RowWeight returns the number of set entries in row i, or 0 if i is out of range.
func (m *Matrix) RowWeight(i int) int {
	if i < 0 || i >= len(m.rows) {
		return 0
	}
	return int(m.rows[i].GetCardinality())
}

// ColumnWeights returns, for every column, the number of rows containing it.
func (m *Matrix) ColumnWeights() []int {
	out := make([]int, m.cols)
	for _, row := range m.rows {
		row.Iterate(func(c uint32) bool {
			out[c]++
			return true
		})
	}
	return out
}

// IsZero reports whether every entry is 0.
func (m *Matrix) IsZero() bool {
	for _, row := range m.rows {
		if !row.IsEmpty() {
			return false
		}
	}
	return true
}

// Equal reports whether m and o have the same shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.cols != o.cols || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equals(o.rows[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{cols: m.cols, rows: make([]*roaring.Bitmap, len(m.rows))}
	for i, row := range m.rows {
		out.rows[i] = row.Clone()
	}
	return out
}

// MulVec returns m·v over GF(2).
func (m *Matrix) MulVec(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, gf2Errorf("Matrix.MulVec", ErrNilOperand)
	}
	if v.n != m.cols {
		return nil, fmt.Errorf("Matrix.MulVec(%d) cols=%d: %w", v.n, m.cols, ErrDimensionMismatch)
	}
	out := newVector(len(m.rows))
	for i, row := range m.rows {
		parity := false
		row.Iterate(func(c uint32) bool {
			if v.bits.Test(uint(c)) {
				parity = !parity
			}
			return true
		})
		if parity {
			out.bits.Set(uint(i))
		}
	}
	return out, nil
}

// Stack returns the vertical concatenation of ms. All operands must share
// the same column count.
func Stack(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return NewMatrix(0)
	}
	out := &Matrix{cols: ms[0].cols}
	for k, m := range ms {
		if m == nil {
			return nil, gf2Errorf("Stack", ErrNilOperand)
		}
		if m.cols != out.cols {
			return nil, fmt.Errorf("Stack(operand %d cols=%d, want %d): %w", k, m.cols, out.cols, ErrDimensionMismatch)
		}
		for _, row := range m.rows {
			out.rows = append(out.rows, row.Clone())
		}
	}
	return out, nil
}
