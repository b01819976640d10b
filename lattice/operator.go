// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvqec/gf2"
)

// Operator is a mutable n-qubit Pauli operator on a code, built site by
// site. Every application multiplies into the current value (phases are
// dropped), so applying the same Pauli twice to a site cancels.
type Operator struct {
	code Code
	bsf  *gf2.Vector
}

// NewOperator returns the identity operator on code.
func NewOperator(code Code) *Operator {
	v, _ := gf2.NewBSF(code.Qubits().Len())
	return &Operator{code: code, bsf: v}
}

// OperatorFromBSF wraps a copy of an existing symplectic vector.
func OperatorFromBSF(code Code, v *gf2.Vector) (*Operator, error) {
	if v == nil || v.Len() != 2*code.Qubits().Len() {
		return nil, fmt.Errorf("OperatorFromBSF: %w", ErrOperatorMismatch)
	}
	return &Operator{code: code, bsf: v.Clone()}, nil
}

// Site applies p on every listed qubit.
func (o *Operator) Site(p gf2.Pauli, sites ...Coord) error {
	for _, c := range sites {
		q, err := o.code.Qubits().Position(c)
		if err != nil {
			return fmt.Errorf("Operator.Site: %w", err)
		}
		if err = o.bsf.ApplyPauli(q, p); err != nil {
			return fmt.Errorf("Operator.Site: %w", err)
		}
	}
	return nil
}

// Vertex applies p on every qubit of the vertex check at c.
func (o *Operator) Vertex(p gf2.Pauli, c Coord) error {
	sites, err := o.code.VertexSupport(c)
	if err != nil {
		return fmt.Errorf("Operator.Vertex: %w", err)
	}
	return o.Site(p, sites...)
}

// Face applies p on every qubit of the face check at c.
func (o *Operator) Face(p gf2.Pauli, c Coord) error {
	sites, err := o.code.FaceSupport(c)
	if err != nil {
		return fmt.Errorf("Operator.Face: %w", err)
	}
	return o.Site(p, sites...)
}

// Mul multiplies another operator on the same code into o.
func (o *Operator) Mul(other *Operator) error {
	return o.bsf.Add(other.bsf)
}

// At returns the Pauli acting on the qubit at c (I for non-qubits).
func (o *Operator) At(c Coord) gf2.Pauli {
	q, err := o.code.Qubits().Position(c)
	if err != nil {
		return gf2.I
	}
	return o.bsf.PauliAt(q)
}

// Support returns, in qubit order, the sites where o acts as one of the
// given Paulis. With no arguments every non-identity site is returned.
func (o *Operator) Support(ps ...gf2.Pauli) []Coord {
	idx := o.code.Qubits()
	var out []Coord
	for q := 0; q < idx.Len(); q++ {
		p := o.bsf.PauliAt(q)
		if p == gf2.I || (len(ps) > 0 && !containsPauli(ps, p)) {
			continue
		}
		c, _ := idx.At(q)
		out = append(out, c)
	}
	return out
}

func containsPauli(ps []gf2.Pauli, p gf2.Pauli) bool {
	for _, x := range ps {
		if x == p {
			return true
		}
	}
	return false
}

// Weight returns the number of non-identity sites.
func (o *Operator) Weight() int {
	w, _ := gf2.PauliWeight(o.bsf)
	return w
}

// BSF returns a copy of the operator in binary symplectic form.
func (o *Operator) BSF() *gf2.Vector { return o.bsf.Clone() }
