// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// DeformedAxis is Pauli noise on a Clifford-deformed code: on every qubit
// oriented along Axis the X and Z rates are exchanged.
type DeformedAxis struct {
	dir  Direction
	axis lattice.Axis
}

var _ ErrorModel = (*DeformedAxis)(nil)

// NewDeformedAxis validates the direction and the deformation axis.
func NewDeformedAxis(rx, ry, rz float64, axis lattice.Axis) (*DeformedAxis, error) {
	dir := Direction{X: rx, Y: ry, Z: rz}
	if err := dir.Validate(); err != nil {
		return nil, fmt.Errorf("NewDeformedAxis: %w", err)
	}
	if axis < lattice.AxisX || axis > lattice.AxisZ {
		return nil, fmt.Errorf("NewDeformedAxis: %w", lattice.ErrInvalidAxis)
	}
	return &DeformedAxis{dir: dir, axis: axis}, nil
}

// Axis returns the deformed axis.
func (m *DeformedAxis) Axis() lattice.Axis { return m.axis }

// Label implements ErrorModel.
func (m *DeformedAxis) Label() string {
	return fmt.Sprintf("Deformed %s Pauli %s", m.axis, m.dir)
}

// ProbabilityDistribution implements ErrorModel.
func (m *DeformedAxis) ProbabilityDistribution(code lattice.Code, p float64) (Distribution, error) {
	if err := validate(code, p); err != nil {
		return Distribution{}, fmt.Errorf("DeformedAxis.ProbabilityDistribution: %w", err)
	}
	qubits, err := lattice.AxisQubits(code, m.axis)
	if err != nil {
		return Distribution{}, fmt.Errorf("DeformedAxis.ProbabilityDistribution: %w", err)
	}
	d := uniform(code.NKD().N, p, m.dir)
	for _, q := range qubits {
		d.swapXZ(q)
	}
	return d, nil
}

// Generate implements ErrorModel.
func (m *DeformedAxis) Generate(code lattice.Code, p float64, rng *rand.Rand) (*gf2.Vector, error) {
	d, err := m.ProbabilityDistribution(code, p)
	if err != nil {
		return nil, err
	}
	return Sample(d, rng)
}

// Deformation is the Pauli relabeling drawn for one qubit.
type Deformation uint8

const (
	// Identity leaves the qubit's rates unchanged.
	Identity Deformation = iota
	// SwapXZ exchanges the X and Z rates.
	SwapXZ
	// SwapYZ exchanges the Y and Z rates.
	SwapYZ
)

// DeformedRandom is Pauli noise where each qubit independently draws a
// Deformation with probabilities (1-p_xz-p_yz, p_xz, p_yz). The draw is
// repeated on every ProbabilityDistribution or Generate call.
//
// ProbabilityDistribution has no generator argument, so it draws from an
// internal stream guarded by a mutex. Generate draws from the caller's rng.
type DeformedRandom struct {
	dir      Direction
	pXZ, pYZ float64

	mu  sync.Mutex
	rng *rand.Rand
}

var _ ErrorModel = (*DeformedRandom)(nil)

// NewDeformedRandom validates the parameters. seed feeds the internal
// stream used by ProbabilityDistribution (0 means DefaultSeed).
func NewDeformedRandom(rx, ry, rz, pXZ, pYZ float64, seed int64) (*DeformedRandom, error) {
	dir := Direction{X: rx, Y: ry, Z: rz}
	if err := dir.Validate(); err != nil {
		return nil, fmt.Errorf("NewDeformedRandom: %w", err)
	}
	if pXZ < 0 || pYZ < 0 || math.IsNaN(pXZ) || math.IsNaN(pYZ) || pXZ+pYZ > 1+directionTolerance {
		return nil, fmt.Errorf("NewDeformedRandom: p_xz=%v p_yz=%v: %w", pXZ, pYZ, ErrInvalidProbability)
	}
	return &DeformedRandom{dir: dir, pXZ: pXZ, pYZ: pYZ, rng: NewRNG(seed)}, nil
}

// Label implements ErrorModel.
func (m *DeformedRandom) Label() string { return "Deformed Random Pauli " + m.dir.String() }

// Deformations draws one Deformation per qubit from rng.
func (m *DeformedRandom) Deformations(n int, rng *rand.Rand) []Deformation {
	rng = orDefault(rng)
	out := make([]Deformation, n)
	for q := range out {
		u := rng.Float64()
		switch {
		case u < m.pXZ:
			out[q] = SwapXZ
		case u < m.pXZ+m.pYZ:
			out[q] = SwapYZ
		}
	}
	return out
}

// ProbabilityDistribution implements ErrorModel. Safe for concurrent use.
func (m *DeformedRandom) ProbabilityDistribution(code lattice.Code, p float64) (Distribution, error) {
	if err := validate(code, p); err != nil {
		return Distribution{}, fmt.Errorf("DeformedRandom.ProbabilityDistribution: %w", err)
	}
	m.mu.Lock()
	defs := m.Deformations(code.NKD().N, m.rng)
	m.mu.Unlock()
	return m.deform(code.NKD().N, p, defs), nil
}

// Generate implements ErrorModel. The deformation and the error are both
// drawn from rng, so a fixed seed reproduces the trial exactly.
func (m *DeformedRandom) Generate(code lattice.Code, p float64, rng *rand.Rand) (*gf2.Vector, error) {
	if err := validate(code, p); err != nil {
		return nil, fmt.Errorf("DeformedRandom.Generate: %w", err)
	}
	rng = orDefault(rng)
	n := code.NKD().N
	return Sample(m.deform(n, p, m.Deformations(n, rng)), rng)
}

func (m *DeformedRandom) deform(n int, p float64, defs []Deformation) Distribution {
	d := uniform(n, p, m.dir)
	for q, def := range defs {
		switch def {
		case SwapXZ:
			d.swapXZ(q)
		case SwapYZ:
			d.swapYZ(q)
		}
	}
	return d
}
