package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/noise"
)

func TestDirectionFromBias(t *testing.T) {
	tests := []struct {
		name  string
		pauli gf2.Pauli
		eta   float64
		want  noise.Direction
	}{
		{"depolarizing", gf2.Z, 0.5, noise.Depolarizing},
		{"z bias 10", gf2.Z, 10, noise.Direction{X: 1.0 / 22, Y: 1.0 / 22, Z: 10.0 / 11}},
		{"x bias 1", gf2.X, 1, noise.Direction{X: 0.5, Y: 0.25, Z: 0.25}},
		{"pure y", gf2.Y, math.Inf(1), noise.Direction{Y: 1}},
		{"zero bias", gf2.Z, 0, noise.Direction{X: 0.5, Y: 0.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := noise.DirectionFromBias(tc.pauli, tc.eta)
			require.NoError(t, err)
			require.InDelta(t, tc.want.X, got.X, 1e-12)
			require.InDelta(t, tc.want.Y, got.Y, 1e-12)
			require.InDelta(t, tc.want.Z, got.Z, 1e-12)
			require.NoError(t, got.Validate())
		})
	}
}

func TestDirectionFromBias_Errors(t *testing.T) {
	_, err := noise.DirectionFromBias(gf2.Z, -1)
	require.ErrorIs(t, err, noise.ErrInvalidBias)
	_, err = noise.DirectionFromBias(gf2.Z, math.NaN())
	require.ErrorIs(t, err, noise.ErrInvalidBias)
	_, err = noise.DirectionFromBias(gf2.I, 1)
	require.ErrorIs(t, err, gf2.ErrUnknownPauli)
}

func TestDirection_Validate(t *testing.T) {
	require.NoError(t, noise.Direction{Z: 1}.Validate())
	require.ErrorIs(t, noise.Direction{X: 0.5, Z: 0.4}.Validate(), noise.ErrInvalidDirection)
	require.ErrorIs(t, noise.Direction{X: -0.5, Z: 1.5}.Validate(), noise.ErrInvalidDirection)
	require.Equal(t, "X0.5000Y0.2500Z0.2500", noise.Direction{X: 0.5, Y: 0.25, Z: 0.25}.String())
}

func TestRNG(t *testing.T) {
	a, b := noise.NewRNG(0), noise.NewRNG(noise.DefaultSeed)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63(), "seed 0 maps to the default seed")
	}

	base1, base2 := noise.NewRNG(42), noise.NewRNG(42)
	c1, c2 := noise.DeriveRNG(base1, 3), noise.DeriveRNG(base2, 3)
	require.Equal(t, c1.Int63(), c2.Int63(), "derivation is deterministic")

	other := noise.DeriveRNG(noise.NewRNG(42), 4)
	require.NotEqual(t, noise.DeriveRNG(noise.NewRNG(42), 3).Int63(), other.Int63())
	require.NotEqual(t, noise.DeriveSeed(1, 0), noise.DeriveSeed(1, 1))
	require.NotNil(t, noise.DeriveRNG(nil, 0))
}
