// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Planar2D is the surface code on an Lx×Ly square patch with open
// boundaries. The left and right boundaries are rough (no vertex checks
// at x=0 or x=2Lx), the top and bottom are smooth.
type Planar2D struct {
	stabilizerCode
}

// NewPlanar2D builds the [[Lx·Ly+(Lx-1)(Ly-1), 1, min(L)]] planar code.
func NewPlanar2D(lx, ly int) (*Planar2D, error) {
	if err := checkSize(lx, ly); err != nil {
		return nil, fmt.Errorf("NewPlanar2D: %w", err)
	}
	p := &Planar2D{}
	l := layout{
		label:        fmt.Sprintf("Planar %dx%d", lx, ly),
		size:         []int{lx, ly},
		nkd:          NKD{N: lx*ly + (lx-1)*(ly-1), K: 1, D: min(lx, ly)},
		vertexDeltas: deltas2D,
		faceDeltas:   func(Coord) []Coord { return deltas2D },
		axis:         edgeAxis2D,
	}
	l.qubits = append(grid2D(1, 2*lx, 0, 2*ly-1), grid2D(2, 2*lx-1, 1, 2*ly-2)...)
	l.vertices = grid2D(2, 2*lx-1, 0, 2*ly-1)
	l.faces = grid2D(1, 2*lx, 1, 2*ly-2)
	l.logicals = func() logicalSpec {
		return logicalSpec{
			xs: [][]Coord{grid2D(1, 2*lx, 0, 1)},
			zs: [][]Coord{grid2D(1, 2, 0, 2*ly-1)},
		}
	}
	if err := p.build(l); err != nil {
		return nil, fmt.Errorf("NewPlanar2D: %w", err)
	}
	return p, nil
}
