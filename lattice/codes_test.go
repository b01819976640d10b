package lattice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// allCodes returns a spread of sizes for every code family.
func allCodes(t *testing.T) []lattice.Code {
	t.Helper()
	var out []lattice.Code
	for _, s := range [][3]int{{2, 2, 2}, {3, 3, 3}, {3, 4, 5}, {5, 4, 3}} {
		c, err := lattice.NewToric3D(s[0], s[1], s[2])
		require.NoError(t, err)
		out = append(out, c)
	}
	for _, s := range [][3]int{{2, 2, 2}, {4, 2, 3}, {4, 6, 2}} {
		c, err := lattice.NewRotatedToric3D(s[0], s[1], s[2])
		require.NoError(t, err)
		out = append(out, c)
	}
	for _, s := range [][3]int{{2, 2, 2}, {3, 3, 3}, {4, 4, 4}, {2, 4, 3}, {3, 5, 2}} {
		c, err := lattice.NewRotatedPlanar3D(s[0], s[1], s[2])
		require.NoError(t, err)
		out = append(out, c)
	}
	for _, s := range [][2]int{{2, 2}, {3, 3}, {3, 5}, {6, 4}} {
		c, err := lattice.NewToric2D(s[0], s[1])
		require.NoError(t, err)
		out = append(out, c)
		p, err := lattice.NewPlanar2D(s[0], s[1])
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

// TestIndices_DisjointAndContiguous checks that every index is a bijection
// onto 0..Len()-1 and that the three coordinate sets never overlap.
func TestIndices_DisjointAndContiguous(t *testing.T) {
	for _, code := range allCodes(t) {
		t.Run(code.Label(), func(t *testing.T) {
			seen := make(map[lattice.Coord]string)
			for name, ix := range map[string]*lattice.Index{
				"qubit": code.Qubits(), "vertex": code.Vertices(), "face": code.Faces(),
			} {
				for i, c := range ix.Coords() {
					pos, err := ix.Position(c)
					require.NoError(t, err)
					require.Equal(t, i, pos)
					other, dup := seen[c]
					require.False(t, dup, "%s %s already indexed as %s", name, c, other)
					seen[c] = name
				}
			}
			assert.Equal(t, code.NKD().N, code.Qubits().Len())
		})
	}
}

// TestStabilizers_Commute verifies that all checks commute pairwise.
func TestStabilizers_Commute(t *testing.T) {
	for _, code := range allCodes(t) {
		t.Run(code.Label(), func(t *testing.T) {
			c, err := gf2.Commute(code.Stabilizers(), code.Stabilizers())
			require.NoError(t, err)
			assert.True(t, c.IsZero())
		})
	}
}

// TestStabilizers_Rank verifies rank(stabilizers) = n - k.
func TestStabilizers_Rank(t *testing.T) {
	for _, code := range allCodes(t) {
		t.Run(code.Label(), func(t *testing.T) {
			p := code.NKD()
			assert.Equal(t, p.N-p.K, gf2.Rank(code.Stabilizers()))
		})
	}
}

// TestLogicals_Algebra verifies that X and Z logicals anticommute exactly
// as the identity matrix and commute with every stabilizer.
func TestLogicals_Algebra(t *testing.T) {
	for _, code := range allCodes(t) {
		t.Run(code.Label(), func(t *testing.T) {
			k := code.NKD().K
			xs, zs := code.LogicalXs(), code.LogicalZs()
			require.Equal(t, k, xs.Rows())
			require.Equal(t, k, zs.Rows())

			xz, err := gf2.Commute(xs, zs)
			require.NoError(t, err)
			for i := 0; i < k; i++ {
				for j := 0; j < k; j++ {
					got, _ := xz.At(i, j)
					assert.Equal(t, i == j, got, "X%d vs Z%d", i, j)
				}
			}
			for _, l := range []*gf2.Matrix{xs, zs} {
				c, err := gf2.Commute(code.Stabilizers(), l)
				require.NoError(t, err)
				assert.True(t, c.IsZero())
				self, err := gf2.Commute(l, l)
				require.NoError(t, err)
				assert.True(t, self.IsZero())
			}
			assert.Same(t, xs, code.LogicalXs(), "logicals are cached")
		})
	}
}

// TestParityChecks_Shape checks Hx/Hz dimensions and column weights.
func TestParityChecks_Shape(t *testing.T) {
	for _, code := range allCodes(t) {
		t.Run(code.Label(), func(t *testing.T) {
			n := code.NKD().N
			assert.Equal(t, code.Vertices().Len(), code.Hx().Rows())
			assert.Equal(t, code.Faces().Len(), code.Hz().Rows())
			assert.Equal(t, n, code.Hx().Cols())
			assert.Equal(t, n, code.Hz().Cols())
			assert.Equal(t, lattice.SyndromeLength(code), code.Stabilizers().Rows())
			for q, w := range code.Hx().ColumnWeights() {
				assert.LessOrEqual(t, w, 2, "qubit %d in more than two vertex checks", q)
			}
		})
	}
}

// TestNewCode_InvalidSize rejects extents below MinSize.
func TestNewCode_InvalidSize(t *testing.T) {
	_, err := lattice.NewToric3D(1, 3, 3)
	require.ErrorIs(t, err, lattice.ErrInvalidSize)
	_, err = lattice.NewToric2D(3, 0)
	require.ErrorIs(t, err, lattice.ErrInvalidSize)
	_, err = lattice.NewPlanar2D(-1, 4)
	require.ErrorIs(t, err, lattice.ErrInvalidSize)
	_, err = lattice.NewRotatedPlanar3D(3, 3, 1)
	require.ErrorIs(t, err, lattice.ErrInvalidSize)
	_, err = lattice.NewRotatedToric3D(3, 4, 2)
	require.ErrorIs(t, err, lattice.ErrInvalidSize, "odd extents do not close the checkerboard")
}

// TestNKD pins the declared code parameters.
func TestNKD(t *testing.T) {
	t3, _ := lattice.NewToric3D(3, 4, 5)
	t2, _ := lattice.NewToric2D(3, 5)
	p2, _ := lattice.NewPlanar2D(3, 5)
	rt, _ := lattice.NewRotatedToric3D(4, 2, 3)
	rp, _ := lattice.NewRotatedPlanar3D(4, 4, 4)
	for _, tc := range []struct {
		code lattice.Code
		want lattice.NKD
	}{
		{t3, lattice.NKD{N: 180, K: 3, D: 3}},
		{t2, lattice.NKD{N: 30, K: 2, D: 3}},
		{p2, lattice.NKD{N: 23, K: 1, D: 3}},
		{rt, lattice.NKD{N: 44, K: 2, D: 2}},
		{rp, lattice.NKD{N: 112, K: 1, D: 4}},
	} {
		assert.Equal(t, tc.want, tc.code.NKD(), tc.code.Label())
	}
	assert.Equal(t, "[[180,3,3]]", fmt.Sprint(t3.NKD()))
	assert.Equal(t, "Toric 3x4x5", t3.Label())
	assert.Equal(t, "Planar 3x5", p2.Label())
	assert.Equal(t, "Rotated planar 4x4x4", rp.Label())
}
