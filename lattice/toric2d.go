// SPDX-License-Identifier: MIT

package lattice

import "fmt"

var deltas2D = []Coord{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}}

// Toric2D is the Kitaev toric code on an Lx×Ly periodic square lattice.
// Qubit order: x-edges (odd,even) then y-edges (even,odd).
type Toric2D struct {
	stabilizerCode
}

// NewToric2D builds the [[2·Lx·Ly, 2, min(L)]] toric code.
func NewToric2D(lx, ly int) (*Toric2D, error) {
	if err := checkSize(lx, ly); err != nil {
		return nil, fmt.Errorf("NewToric2D: %w", err)
	}
	t := &Toric2D{}
	l := layout{
		label:        fmt.Sprintf("Toric %dx%d", lx, ly),
		size:         []int{lx, ly},
		nkd:          NKD{N: 2 * lx * ly, K: 2, D: min(lx, ly)},
		periodic:     true,
		vertexDeltas: deltas2D,
		faceDeltas:   func(Coord) []Coord { return deltas2D },
		axis:         edgeAxis2D,
	}
	l.qubits = append(grid2D(1, 2*lx, 0, 2*ly), grid2D(0, 2*lx, 1, 2*ly)...)
	l.vertices = grid2D(0, 2*lx, 0, 2*ly)
	l.faces = grid2D(1, 2*lx, 1, 2*ly)
	l.logicals = func() logicalSpec {
		return logicalSpec{
			xs: [][]Coord{grid2D(1, 2*lx, 0, 1), grid2D(0, 1, 1, 2*ly)},
			zs: [][]Coord{grid2D(1, 2, 0, 2*ly), grid2D(0, 2*lx, 1, 2)},
		}
	}
	if err := t.build(l); err != nil {
		return nil, fmt.Errorf("NewToric2D: %w", err)
	}
	return t, nil
}

func grid2D(x0, x1, y0, y1 int) []Coord {
	var out []Coord
	for x := x0; x < x1; x += 2 {
		for y := y0; y < y1; y += 2 {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

func edgeAxis2D(c Coord) (Axis, bool) {
	ox, oy := c.X%2 != 0, c.Y%2 != 0
	switch {
	case ox && !oy && c.Z == 0:
		return AxisX, true
	case !ox && oy && c.Z == 0:
		return AxisY, true
	}
	return 0, false
}
