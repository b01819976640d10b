package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// edgeCoords converts (axis, x, y, z) cell labels into edge coordinates:
// the edge leaving vertex 2·(x,y,z) along axis.
func edgeCoords(cells ...[4]int) []lattice.Coord {
	out := make([]lattice.Coord, len(cells))
	for i, e := range cells {
		c := lattice.C(2*e[1], 2*e[2], 2*e[3])
		out[i] = c.Add(lattice.Axis(e[0]).Unit())
	}
	return out
}

// faceCoords converts (axis, x, y, z) cell labels into face coordinates:
// the face normal to axis at cell (x,y,z).
func faceCoords(cells ...[4]int) []lattice.Coord {
	out := make([]lattice.Coord, len(cells))
	for i, f := range cells {
		c := lattice.C(2*f[1]+1, 2*f[2]+1, 2*f[3]+1)
		u := lattice.Axis(f[0]).Unit()
		out[i] = lattice.C(c.X-u.X, c.Y-u.Y, c.Z-u.Z)
	}
	return out
}

// zError builds the Z error on sites and returns it in BSF.
func zError(t *testing.T, code lattice.Code, sites ...lattice.Coord) *gf2.Vector {
	t.Helper()
	op := lattice.NewOperator(code)
	require.NoError(t, op.Site(gf2.Z, sites...))
	return op.BSF()
}

// syndromeOf measures e on code.
func syndromeOf(t *testing.T, code lattice.Code, e *gf2.Vector) *gf2.Vector {
	t.Helper()
	s, err := lattice.MeasureSyndrome(code, e)
	require.NoError(t, err)
	return s
}

// residualFree reports whether e+correction commutes with all stabilizers.
func residualFree(t *testing.T, code lattice.Code, e, correction *gf2.Vector) bool {
	t.Helper()
	total, err := gf2.Sum(e, correction)
	require.NoError(t, err)
	ok, err := lattice.InCodespace(code, total)
	require.NoError(t, err)
	return ok
}

// signFaces lists the face coordinates marked in s.
func signFaces(code lattice.Code, ones []int) []lattice.Coord {
	out := make([]lattice.Coord, 0, len(ones))
	for _, i := range ones {
		c, _ := code.Faces().At(i)
		out = append(out, c)
	}
	return out
}

// zSites lists the qubits with a Z component in a BSF vector.
func zSites(t *testing.T, code lattice.Code, v *gf2.Vector) []lattice.Coord {
	t.Helper()
	op, err := lattice.OperatorFromBSF(code, v)
	require.NoError(t, err)
	return op.Support(gf2.Z, gf2.Y)
}
