// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"

	"github.com/katalvlaran/lvqec/lattice"
)

// sweepTables replaces coordinate arithmetic in the hot loop with dense
// index lookups. Built once per code, read-only afterwards.
type sweepTables struct {
	nFaces  int
	nQubits int
	extent  int
	// octant[v] holds the face indices xf, yf, zf of vertex v.
	octant [][3]int32
	// edges[v] holds the qubit indices of the +x, +y, +z edges of vertex v.
	edges [][3]int32
	// coboundary[q] holds the four faces containing edge q.
	coboundary [][4]int32
}

func buildTables(code *lattice.Toric3D) (*sweepTables, error) {
	faces, qubits, vertices := code.Faces(), code.Qubits(), code.Vertices()
	lx, ly, lz := code.Extents()
	t := &sweepTables{
		nFaces:     faces.Len(),
		nQubits:    qubits.Len(),
		extent:     max(lx, ly, lz),
		octant:     make([][3]int32, vertices.Len()),
		edges:      make([][3]int32, vertices.Len()),
		coboundary: make([][4]int32, qubits.Len()),
	}

	faceAt := func(c lattice.Coord) (int32, error) {
		i, err := faces.Position(code.Wrap(c))
		return int32(i), err
	}
	qubitAt := func(c lattice.Coord) (int32, error) {
		i, err := qubits.Position(code.Wrap(c))
		return int32(i), err
	}

	// Stage 1: vertex octants.
	for v, c := range vertices.Coords() {
		var err error
		o := [3]lattice.Coord{
			c.Add(lattice.C(0, 1, 1)),
			c.Add(lattice.C(1, 0, 1)),
			c.Add(lattice.C(1, 1, 0)),
		}
		for k := range o {
			if t.octant[v][k], err = faceAt(o[k]); err != nil {
				return nil, fmt.Errorf("sweep tables: %w", err)
			}
			if t.edges[v][k], err = qubitAt(c.Add(lattice.Axis(k).Unit())); err != nil {
				return nil, fmt.Errorf("sweep tables: %w", err)
			}
		}
	}

	// Stage 2: edge coboundaries.
	for q, c := range qubits.Coords() {
		fs, err := code.EdgeFaces(c)
		if err != nil {
			return nil, fmt.Errorf("sweep tables: %w", err)
		}
		for k, f := range fs {
			if t.coboundary[q][k], err = faceAt(f); err != nil {
				return nil, fmt.Errorf("sweep tables: %w", err)
			}
		}
	}
	return t, nil
}
