package gf2_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvqec/gf2"
)

// randomSparse builds r rows of weight w over cols columns from a fixed seed.
func randomSparse(b *testing.B, r, cols, w int) *gf2.Matrix {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	m, err := gf2.NewMatrix(cols)
	if err != nil {
		b.Fatal(err)
	}
	row := make([]int, w)
	for i := 0; i < r; i++ {
		for k := range row {
			row[k] = rng.Intn(cols)
		}
		if err = m.AppendRow(row...); err != nil {
			b.Fatal(err)
		}
	}
	return m
}

// BenchmarkCommute measures an all-pairs product on a 3D-toric-sized stack.
func BenchmarkCommute(b *testing.B) {
	m := randomSparse(b, 768, 1152, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gf2.Commute(m, m)
	}
}

// BenchmarkRank measures Gaussian elimination on the same stack.
func BenchmarkRank(b *testing.B) {
	m := randomSparse(b, 768, 1152, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gf2.Rank(m)
	}
}
