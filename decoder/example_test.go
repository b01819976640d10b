package decoder_test

import (
	"fmt"

	"github.com/katalvlaran/lvqec/decoder"
	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// ExampleSweep3D_DecodeReport decodes two Z errors that share a vertex.
func ExampleSweep3D_DecodeReport() {
	code, _ := lattice.NewToric3D(3, 3, 3)
	e := lattice.NewOperator(code)
	_ = e.Site(gf2.Z, lattice.C(1, 0, 0), lattice.C(0, 1, 0))
	syndrome, _ := lattice.MeasureSyndrome(code, e.BSF())

	r, _ := decoder.NewSweep3D().DecodeReport(code, syndrome)
	fmt.Println(r.Outcome, "after", r.Sweeps, "sweeps")

	total, _ := gf2.Sum(e.BSF(), r.Correction)
	ok, _ := lattice.InCodespace(code, total)
	fmt.Println("codespace:", ok)

	// Output:
	// converged after 2 sweeps
	// codespace: true
}
