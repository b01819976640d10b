// SPDX-License-Identifier: MIT

package decoder

import (
	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// Decoder maps a syndrome of code to a correction in binary symplectic form.
// The syndrome has one bit per stabilizer row, faces first, and is never
// modified. Implementations must be safe for concurrent use.
type Decoder interface {
	Label() string
	Decode(code lattice.Code, syndrome *gf2.Vector) (*gf2.Vector, error)
}

// Reporter is implemented by decoders that can explain how a decode
// terminated. Sweep3D implements it.
type Reporter interface {
	DecodeReport(code lattice.Code, syndrome *gf2.Vector) (Report, error)
}

// Supporter is implemented by decoders restricted to some code families.
// Supports returns ErrUnsupportedCode for codes the decoder cannot handle.
type Supporter interface {
	Supports(code lattice.Code) error
}

// Outcome classifies how a sweep decode terminated.
type Outcome int

const (
	// Converged means every face check was repaired.
	Converged Outcome = iota
	// Cycle means the signs revisited an earlier configuration.
	Cycle
	// SweepLimit means the sweep ceiling was reached.
	SweepLimit
)

// String returns a lower-case name.
func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converged"
	case Cycle:
		return "cycle"
	case SweepLimit:
		return "sweep_limit"
	}
	return "unknown"
}

// Report is the full result of one sweep decode.
type Report struct {
	// Correction is a 2n symplectic vector with only Z bits set.
	Correction *gf2.Vector
	Outcome    Outcome
	// Sweeps is the number of sweep moves applied.
	Sweeps int
	// CycleStart is the sweep after which the repeated configuration was
	// first seen (0 is the initial state), or -1 unless Outcome is Cycle.
	CycleStart int
	// Residual is the number of face checks still unsatisfied.
	Residual int
}
