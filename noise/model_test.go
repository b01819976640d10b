package noise_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/noise"
)

func cube(t *testing.T) *lattice.Toric3D {
	t.Helper()
	code, err := lattice.NewToric3D(3, 3, 3)
	require.NoError(t, err)
	return code
}

// requireNormalized checks p_I+p_X+p_Y+p_Z == 1 at every qubit.
func requireNormalized(t *testing.T, d noise.Distribution, n int) {
	t.Helper()
	require.Equal(t, n, d.Len())
	for q := 0; q < n; q++ {
		pi, px, py, pz := d.At(q)
		require.InDelta(t, 1, pi+px+py+pz, 1e-12, "qubit %d", q)
	}
}

// blockWeights counts the X and Z bits of a symplectic vector.
func blockWeights(t *testing.T, v *gf2.Vector) (x, z int) {
	t.Helper()
	xb, err := v.XBlock()
	require.NoError(t, err)
	zb, err := v.ZBlock()
	require.NoError(t, err)
	return xb.Weight(), zb.Weight()
}

func TestPauli_ProbabilityDistribution(t *testing.T) {
	code := cube(t)
	m, err := noise.NewPauli(0.2, 0.3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "Pauli X0.2000Y0.3000Z0.5000", m.Label())

	d, err := m.ProbabilityDistribution(code, 0.1)
	require.NoError(t, err)
	requireNormalized(t, d, 81)
	pi, px, py, pz := d.At(40)
	assert.InDelta(t, 0.9, pi, 1e-12)
	assert.InDelta(t, 0.02, px, 1e-12)
	assert.InDelta(t, 0.03, py, 1e-12)
	assert.InDelta(t, 0.05, pz, 1e-12)
}

func TestPauli_GenerateExtremes(t *testing.T) {
	code := cube(t)
	m, err := noise.NewPauli(0, 0, 1)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))

	e, err := m.Generate(code, 0, rng)
	require.NoError(t, err)
	require.True(t, e.IsZero())

	e, err = m.Generate(code, 1, rng)
	require.NoError(t, err)
	x, z := blockWeights(t, e)
	require.Equal(t, 0, x)
	require.Equal(t, 81, z)
}

func TestPauli_GenerateRate(t *testing.T) {
	code, err := lattice.NewToric3D(10, 10, 10)
	require.NoError(t, err)
	m, err := noise.NewPauli(1.0/3, 1.0/3, 1.0/3)
	require.NoError(t, err)

	e, err := m.Generate(code, 0.3, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	w, err := gf2.PauliWeight(e)
	require.NoError(t, err)
	rate := float64(w) / float64(code.NKD().N)
	require.InDelta(t, 0.3, rate, 0.05)
}

func TestPauli_Deterministic(t *testing.T) {
	code := cube(t)
	m, _ := noise.NewPauli(0.1, 0.1, 0.8)
	a, err := m.Generate(code, 0.2, noise.NewRNG(9))
	require.NoError(t, err)
	b, err := m.Generate(code, 0.2, noise.NewRNG(9))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	_, err = m.Generate(code, 0.2, nil)
	require.NoError(t, err, "nil rng falls back to the default seed")
}

func TestModels_Validation(t *testing.T) {
	code := cube(t)
	_, err := noise.NewPauli(0.5, 0.5, 0.5)
	require.ErrorIs(t, err, noise.ErrInvalidDirection)
	_, err = noise.NewDeformedAxis(0, 0, 1, lattice.Axis(5))
	require.ErrorIs(t, err, lattice.ErrInvalidAxis)
	_, err = noise.NewDeformedRandom(0, 0, 1, 0.7, 0.7, 1)
	require.ErrorIs(t, err, noise.ErrInvalidProbability)
	_, err = noise.NewDeformedRandom(0, 0, 1, -0.1, 0, 1)
	require.ErrorIs(t, err, noise.ErrInvalidProbability)

	m, _ := noise.NewPauli(0, 0, 1)
	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, err = m.ProbabilityDistribution(code, p)
		require.ErrorIs(t, err, noise.ErrInvalidProbability)
		_, err = m.Generate(code, p, nil)
		require.ErrorIs(t, err, noise.ErrInvalidProbability)
	}
	_, err = m.Generate(nil, 0.1, nil)
	require.ErrorIs(t, err, noise.ErrNilCode)
}

func TestSample_Ragged(t *testing.T) {
	_, err := noise.Sample(noise.Distribution{I: []float64{1}, X: []float64{0}}, nil)
	require.ErrorIs(t, err, gf2.ErrDimensionMismatch)
}
