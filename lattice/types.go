// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvqec/gf2"
)

// MinSize is the smallest supported extent along any lattice axis.
// At L=1 opposite neighbours coincide and supports collapse.
const MinSize = 2

// Coord is a point of the doubled lattice. 2D codes keep Z at 0.
type Coord struct {
	X, Y, Z int
}

// C is shorthand for Coord{x, y, z}.
func C(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z} }

// Add returns c+d component-wise.
func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z} }

// Component returns the coordinate along axis a.
func (c Coord) Component(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// String renders c as "(x,y,z)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z) }

// Axis names a lattice direction.
type Axis int

const (
	// AxisX is the x direction.
	AxisX Axis = iota
	// AxisY is the y direction.
	AxisY
	// AxisZ is the z direction.
	AxisZ
)

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Unit returns the unit step along a.
func (a Axis) Unit() Coord {
	switch a {
	case AxisX:
		return Coord{X: 1}
	case AxisY:
		return Coord{Y: 1}
	default:
		return Coord{Z: 1}
	}
}

// ParseAxis accepts "x", "y", "z" in either case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("ParseAxis(%q): %w", s, ErrInvalidAxis)
}

// NKD holds the code parameters [[n, k, d]].
type NKD struct {
	N, K, D int
}

// String renders the parameters as "[[n,k,d]]".
func (p NKD) String() string { return fmt.Sprintf("[[%d,%d,%d]]", p.N, p.K, p.D) }

// Code is a CSS stabilizer code laid out on a lattice.
// Implementations are immutable after construction and safe for
// concurrent use.
type Code interface {
	// Label is a human readable name such as "Toric 3x4x5".
	Label() string
	// Dimension is 2 or 3.
	Dimension() int
	// Size returns the lattice extents, one per dimension.
	Size() []int
	// NKD returns [[n, k, d]].
	NKD() NKD

	// Qubits, Vertices and Faces return the coordinate indices.
	Qubits() *Index
	Vertices() *Index
	Faces() *Index

	// IsQubit reports whether c is a qubit site.
	IsQubit(c Coord) bool
	// QubitAxis returns the orientation of the edge at c.
	QubitAxis(c Coord) (Axis, error)
	// Wrap reduces c onto the lattice (periodic codes) or returns it unchanged.
	Wrap(c Coord) Coord

	// VertexSupport and FaceSupport list the qubits touched by a check.
	VertexSupport(c Coord) ([]Coord, error)
	FaceSupport(c Coord) ([]Coord, error)

	// Stabilizers has 2n columns, faces first then vertices.
	Stabilizers() *gf2.Matrix
	// Hx has one row per vertex, Hz one row per face; n columns each.
	Hx() *gf2.Matrix
	Hz() *gf2.Matrix

	// LogicalXs and LogicalZs have k rows of 2n columns.
	LogicalXs() *gf2.Matrix
	LogicalZs() *gf2.Matrix
}
