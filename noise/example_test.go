package noise_test

import (
	"fmt"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/noise"
)

// ExampleDirectionFromBias shows the Z-biased direction for η = 10.
func ExampleDirectionFromBias() {
	dir, _ := noise.DirectionFromBias(gf2.Z, 10)
	m, _ := noise.NewPauli(dir.X, dir.Y, dir.Z)
	fmt.Println(m.Label())

	// Output:
	// Pauli X0.0455Y0.0455Z0.9091
}
