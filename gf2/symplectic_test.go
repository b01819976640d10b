package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/gf2"
)

// paulis builds a matrix whose rows are the given Pauli strings.
func paulis(t *testing.T, ss ...string) *gf2.Matrix {
	t.Helper()
	m, err := gf2.NewMatrix(2 * len(ss[0]))
	require.NoError(t, err)
	for _, s := range ss {
		v, err := gf2.ParsePauliString(s)
		require.NoError(t, err)
		require.NoError(t, m.AppendVector(v))
	}
	return m
}

// TestCommute_SingleQubit tabulates commutation of the single-qubit Paulis.
func TestCommute_SingleQubit(t *testing.T) {
	m := paulis(t, "I", "X", "Y", "Z")
	c, err := gf2.Commute(m, m)
	require.NoError(t, err)

	want := [4][4]bool{
		{false, false, false, false},
		{false, false, true, true},
		{false, true, false, true},
		{false, true, true, false},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, err := c.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], got, "pair (%d,%d)", i, j)
		}
	}
}

// TestCommute_MultiQubit checks a batch product across two stacks.
func TestCommute_MultiQubit(t *testing.T) {
	a := paulis(t, "XXI", "ZZI")
	b := paulis(t, "ZII", "XXX", "IZZ")
	c, err := gf2.Commute(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, 3, c.Cols())

	r0, _ := c.RowOnes(0)
	r1, _ := c.RowOnes(1)
	assert.Equal(t, []int{0, 2}, r0)
	assert.Empty(t, r1, "ZZI overlaps XXX on two qubits and IZZ only in Z")
}

// TestCommute_Errors covers shape validation.
func TestCommute_Errors(t *testing.T) {
	a, _ := gf2.NewMatrix(4)
	b, _ := gf2.NewMatrix(6)
	_, err := gf2.Commute(a, b)
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)

	odd, _ := gf2.NewMatrix(3)
	_, err = gf2.Commute(odd, odd)
	require.ErrorIs(t, err, gf2.ErrBadLength)

	_, err = gf2.Commute(nil, a)
	require.ErrorIs(t, err, gf2.ErrNilOperand)
}

// TestCommuteVec agrees with Commute on a single-row operand.
func TestCommuteVec(t *testing.T) {
	m := paulis(t, "ZZII", "IZZI", "IIZZ")
	e, _ := gf2.ParsePauliString("IXII")
	s, err := gf2.CommuteVec(m, e)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, s.Ones())

	row := paulis(t, "IXII")
	c, err := gf2.Commute(m, row)
	require.NoError(t, err)
	for i := 0; i < m.Rows(); i++ {
		got, _ := c.At(i, 0)
		assert.Equal(t, s.Test(i), got)
	}

	short, _ := gf2.NewBSF(3)
	_, err = gf2.CommuteVec(m, short)
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}

// TestWeights distinguishes Hamming weight from Pauli weight.
func TestWeights(t *testing.T) {
	v, _ := gf2.ParsePauliString("XYZI")
	assert.Equal(t, 4, gf2.Weight(v))
	w, err := gf2.PauliWeight(v)
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 0, gf2.Weight(nil))
}

// TestApplyDeformation swaps X and Z on the chosen qubits only.
func TestApplyDeformation(t *testing.T) {
	v, _ := gf2.ParsePauliString("XZYX")
	d, err := gf2.ApplyDeformation(v, []int{0, 1, 2})
	require.NoError(t, err)
	s, _ := gf2.PauliString(d)
	assert.Equal(t, "ZXYX", s)

	orig, _ := gf2.PauliString(v)
	assert.Equal(t, "XZYX", orig)

	_, err = gf2.ApplyDeformation(v, []int{4})
	require.ErrorIs(t, err, gf2.ErrOutOfRange)
}

// TestRank covers independent, dependent and empty inputs.
func TestRank(t *testing.T) {
	for _, tc := range []struct {
		name string
		cols int
		rows [][]int
		want int
	}{
		{"Empty", 4, nil, 0},
		{"ZeroRows", 4, [][]int{{}, {}}, 0},
		{"Identity", 3, [][]int{{0}, {1}, {2}}, 3},
		{"Dependent", 4, [][]int{{0, 1}, {1, 2}, {0, 2}}, 2},
		{"Repeated", 5, [][]int{{0, 4}, {0, 4}, {4}}, 2},
		{"RingParity", 4, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMatrix(t, tc.cols, tc.rows...)
			assert.Equal(t, tc.want, gf2.Rank(m))
			assert.Equal(t, len(tc.rows), m.Rows(), "Rank must not consume rows")
		})
	}
}
