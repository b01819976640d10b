// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// Pauli is i.i.d. Pauli noise: every qubit suffers X, Y or Z with
// probabilities p·r_x, p·r_y and p·r_z.
type Pauli struct {
	dir Direction
}

var _ ErrorModel = (*Pauli)(nil)

// NewPauli validates the direction (r_x, r_y, r_z) and returns the model.
func NewPauli(rx, ry, rz float64) (*Pauli, error) {
	dir := Direction{X: rx, Y: ry, Z: rz}
	if err := dir.Validate(); err != nil {
		return nil, fmt.Errorf("NewPauli: %w", err)
	}
	return &Pauli{dir: dir}, nil
}

// Direction returns (r_x, r_y, r_z).
func (m *Pauli) Direction() Direction { return m.dir }

// Label implements ErrorModel.
func (m *Pauli) Label() string { return "Pauli " + m.dir.String() }

// ProbabilityDistribution implements ErrorModel.
func (m *Pauli) ProbabilityDistribution(code lattice.Code, p float64) (Distribution, error) {
	if err := validate(code, p); err != nil {
		return Distribution{}, fmt.Errorf("Pauli.ProbabilityDistribution: %w", err)
	}
	return uniform(code.NKD().N, p, m.dir), nil
}

// Generate implements ErrorModel.
func (m *Pauli) Generate(code lattice.Code, p float64, rng *rand.Rand) (*gf2.Vector, error) {
	d, err := m.ProbabilityDistribution(code, p)
	if err != nil {
		return nil, err
	}
	return Sample(d, rng)
}
