// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// ErrorModel produces per-qubit Pauli distributions and samples errors.
type ErrorModel interface {
	// Label is a human-readable description including the parameters.
	Label() string
	// ProbabilityDistribution returns the per-qubit (p_I, p_X, p_Y, p_Z).
	ProbabilityDistribution(code lattice.Code, p float64) (Distribution, error)
	// Generate samples an error as a 2n symplectic vector.
	Generate(code lattice.Code, p float64, rng *rand.Rand) (*gf2.Vector, error)
}

// Distribution holds per-qubit Pauli probabilities, indexed like the
// code's qubit index. I[q]+X[q]+Y[q]+Z[q] == 1 for every q.
type Distribution struct {
	I, X, Y, Z []float64
}

// Len returns the number of qubits covered.
func (d Distribution) Len() int { return len(d.I) }

// At returns the four probabilities of qubit q.
func (d Distribution) At(q int) (pi, px, py, pz float64) {
	return d.I[q], d.X[q], d.Y[q], d.Z[q]
}

// uniform fills a distribution with the same direction on n qubits.
func uniform(n int, p float64, dir Direction) Distribution {
	d := Distribution{
		I: make([]float64, n),
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
	for q := 0; q < n; q++ {
		d.I[q] = 1 - p
		d.X[q] = p * dir.X
		d.Y[q] = p * dir.Y
		d.Z[q] = p * dir.Z
	}
	return d
}

// swapXZ and swapYZ exchange the Z rate with X or Y on qubit q.
func (d Distribution) swapXZ(q int) { d.X[q], d.Z[q] = d.Z[q], d.X[q] }
func (d Distribution) swapYZ(q int) { d.Y[q], d.Z[q] = d.Z[q], d.Y[q] }

// Sample draws one error from d. Each qubit consumes exactly one Float64.
//
// Complexity: O(n).
func Sample(d Distribution, rng *rand.Rand) (*gf2.Vector, error) {
	n := d.Len()
	if len(d.X) != n || len(d.Y) != n || len(d.Z) != n {
		return nil, fmt.Errorf("Sample: ragged distribution: %w", gf2.ErrDimensionMismatch)
	}
	e, err := gf2.NewBSF(n)
	if err != nil {
		return nil, err
	}
	rng = orDefault(rng)
	for q := 0; q < n; q++ {
		u := rng.Float64()
		var p gf2.Pauli
		switch {
		case u < d.X[q]:
			p = gf2.X
		case u < d.X[q]+d.Y[q]:
			p = gf2.Y
		case u < d.X[q]+d.Y[q]+d.Z[q]:
			p = gf2.Z
		default:
			continue
		}
		if err = e.ApplyPauli(q, p); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// validate checks the common arguments of every model.
func validate(code lattice.Code, p float64) error {
	if code == nil {
		return ErrNilCode
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return fmt.Errorf("p=%v: %w", p, ErrInvalidProbability)
	}
	return nil
}
