package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/gf2"
)

// mustMatrix builds a matrix from explicit row supports or fails the test.
func mustMatrix(t *testing.T, cols int, rows ...[]int) *gf2.Matrix {
	t.Helper()
	m, err := gf2.NewMatrix(cols)
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, m.AppendRow(r...))
	}
	return m
}

// TestMatrix_Build verifies row appends, entry access and shape.
func TestMatrix_Build(t *testing.T) {
	m := mustMatrix(t, 4, []int{0, 1}, []int{2, 2, 3}, []int{})
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	ones, err := m.RowOnes(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ones, "repeated columns cancel")

	at, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, at)
	_, err = m.At(3, 0)
	require.ErrorIs(t, err, gf2.ErrOutOfRange)

	require.ErrorIs(t, m.AppendRow(4), gf2.ErrOutOfRange)
	assert.Equal(t, []int{1, 1, 0, 1}, m.ColumnWeights())
	assert.Equal(t, 0, m.RowWeight(2))
	assert.False(t, m.IsZero())
}

// TestMatrix_AppendVector checks dense-row ingestion and the length check.
func TestMatrix_AppendVector(t *testing.T) {
	m, _ := gf2.NewMatrix(3)
	v, _ := gf2.VectorOf(3, 0, 2)
	require.NoError(t, m.AppendVector(v))
	row, err := m.RowVector(0)
	require.NoError(t, err)
	assert.True(t, v.Equal(row))

	w, _ := gf2.NewVector(4)
	require.ErrorIs(t, m.AppendVector(w), gf2.ErrDimensionMismatch)
}

// TestMatrix_MulVec computes H·v over GF(2).
func TestMatrix_MulVec(t *testing.T) {
	h := mustMatrix(t, 4, []int{0, 1}, []int{1, 2}, []int{2, 3})
	v, _ := gf2.VectorOf(4, 1)
	s, err := h.MulVec(v)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, s.Ones())

	bad, _ := gf2.NewVector(3)
	_, err = h.MulVec(bad)
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestStack verifies vertical concatenation and its column check.
func TestStack(t *testing.T) {
	a := mustMatrix(t, 3, []int{0})
	b := mustMatrix(t, 3, []int{1}, []int{2})
	s, err := gf2.Stack(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Rows())
	ones, _ := s.RowOnes(2)
	assert.Equal(t, []int{2}, ones)

	c := mustMatrix(t, 2, []int{0})
	_, err = gf2.Stack(a, c)
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)

	clone := s.Clone()
	assert.True(t, clone.Equal(s))
	require.NoError(t, clone.AppendRow(0))
	assert.False(t, clone.Equal(s))
}
