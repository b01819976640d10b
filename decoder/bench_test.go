package decoder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvqec/decoder"
	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// benchSyndromes draws syndromes of i.i.d. Z noise at rate p from a fixed seed.
func benchSyndromes(b *testing.B, code lattice.Code, p float64, count int) []*gf2.Vector {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	out := make([]*gf2.Vector, count)
	for i := range out {
		op := lattice.NewOperator(code)
		for _, q := range code.Qubits().Coords() {
			if rng.Float64() < p {
				_ = op.Site(gf2.Z, q)
			}
		}
		s, err := lattice.MeasureSyndrome(code, op.BSF())
		if err != nil {
			b.Fatal(err)
		}
		out[i] = s
	}
	return out
}

// BenchmarkSweep3D_Decode measures full decoding on an 8x8x8 lattice.
func BenchmarkSweep3D_Decode(b *testing.B) {
	code, _ := lattice.NewToric3D(8, 8, 8)
	dec := decoder.NewSweep3D()
	syndromes := benchSyndromes(b, code, 0.05, 64)
	if _, err := dec.Decode(code, syndromes[0]); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.Decode(code, syndromes[i%len(syndromes)])
	}
}

// BenchmarkSweep3D_NoCycleDetection isolates the cost of the history.
func BenchmarkSweep3D_NoCycleDetection(b *testing.B) {
	code, _ := lattice.NewToric3D(8, 8, 8)
	dec := decoder.NewSweep3D(decoder.WithCycleDetection(false))
	syndromes := benchSyndromes(b, code, 0.05, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dec.Decode(code, syndromes[i%len(syndromes)])
	}
}
