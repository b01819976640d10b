// SPDX-License-Identifier: MIT

package lattice

import "fmt"

var (
	// steps from a 3D vertex to its six edges
	vertexDeltas3D = []Coord{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}

	faceDeltasXY = []Coord{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}}
	faceDeltasYZ = []Coord{{0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}
	faceDeltasXZ = []Coord{{-1, 0, 0}, {1, 0, 0}, {0, 0, -1}, {0, 0, 1}}

	// steps from an edge to the four faces containing it, per edge axis
	edgeFaceDeltas = [3][]Coord{
		AxisX: {{0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
		AxisY: {{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1}},
		AxisZ: {{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}},
	}
)

// Toric3D is the 3D toric code on an Lx×Ly×Lz periodic cubic lattice.
// Qubits live on edges, Z-type checks on vertices and X-type checks on faces.
//
// Qubit order: x-edges (odd,even,even), then y-edges (even,odd,even), then
// z-edges (even,even,odd). Face order: xy faces (odd,odd,even), yz faces
// (even,odd,odd), xz faces (odd,even,odd). Within each block coordinates run
// x-major, z fastest.
type Toric3D struct {
	stabilizerCode
}

// NewToric3D builds the [[3·Lx·Ly·Lz, 3, min(L)]] toric code.
// Each extent must be at least MinSize.
// Complexity: O(Lx·Ly·Lz) time and memory.
func NewToric3D(lx, ly, lz int) (*Toric3D, error) {
	if err := checkSize(lx, ly, lz); err != nil {
		return nil, fmt.Errorf("NewToric3D: %w", err)
	}
	t := &Toric3D{}
	l := layout{
		label:        fmt.Sprintf("Toric %dx%dx%d", lx, ly, lz),
		size:         []int{lx, ly, lz},
		nkd:          NKD{N: 3 * lx * ly * lz, K: 3, D: min(lx, ly, lz)},
		periodic:     true,
		vertexDeltas: vertexDeltas3D,
		faceDeltas:   toric3DFaceDeltas,
		axis:         edgeAxis3D,
	}
	// Edges then faces, one parity block at a time.
	l.qubits = append(l.qubits, grid3D(1, 2*lx, 0, 2*ly, 0, 2*lz)...)
	l.qubits = append(l.qubits, grid3D(0, 2*lx, 1, 2*ly, 0, 2*lz)...)
	l.qubits = append(l.qubits, grid3D(0, 2*lx, 0, 2*ly, 1, 2*lz)...)
	l.vertices = grid3D(0, 2*lx, 0, 2*ly, 0, 2*lz)
	l.faces = append(l.faces, grid3D(1, 2*lx, 1, 2*ly, 0, 2*lz)...)
	l.faces = append(l.faces, grid3D(0, 2*lx, 1, 2*ly, 1, 2*lz)...)
	l.faces = append(l.faces, grid3D(1, 2*lx, 0, 2*ly, 1, 2*lz)...)
	l.logicals = func() logicalSpec { return toric3DLogicals(lx, ly, lz) }

	if err := t.build(l); err != nil {
		return nil, fmt.Errorf("NewToric3D: %w", err)
	}
	return t, nil
}

// Extents returns (Lx, Ly, Lz).
func (t *Toric3D) Extents() (lx, ly, lz int) { return t.size[0], t.size[1], t.size[2] }

// EdgeFaces returns the four faces whose boundary contains the edge at c:
// the coboundary of c.
func (t *Toric3D) EdgeFaces(c Coord) ([]Coord, error) {
	a, ok := edgeAxis3D(c)
	if !ok || !t.qubitIx.Contains(c) {
		return nil, fmt.Errorf("EdgeFaces %s: %w", c, ErrInvalidCoordinate)
	}
	out := make([]Coord, 0, 4)
	for _, d := range edgeFaceDeltas[a] {
		out = append(out, t.Wrap(c.Add(d)))
	}
	return out, nil
}

// grid3D enumerates x in [x0,x1), y in [y0,y1), z in [z0,z1) with step 2,
// x slowest.
func grid3D(x0, x1, y0, y1, z0, z1 int) []Coord {
	var out []Coord
	for x := x0; x < x1; x += 2 {
		for y := y0; y < y1; y += 2 {
			for z := z0; z < z1; z += 2 {
				out = append(out, Coord{x, y, z})
			}
		}
	}
	return out
}

func toric3DFaceDeltas(c Coord) []Coord {
	switch {
	case c.Z%2 == 0:
		return faceDeltasXY
	case c.X%2 == 0:
		return faceDeltasYZ
	default:
		return faceDeltasXZ
	}
}

// edgeAxis3D classifies a coordinate with exactly one odd component.
func edgeAxis3D(c Coord) (Axis, bool) {
	ox, oy, oz := c.X%2 != 0, c.Y%2 != 0, c.Z%2 != 0
	switch {
	case ox && !oy && !oz:
		return AxisX, true
	case !ox && oy && !oz:
		return AxisY, true
	case !ox && !oy && oz:
		return AxisZ, true
	}
	return 0, false
}

// toric3DLogicals returns one string-like X logical and one membrane-like Z
// logical per axis; the i-th X anticommutes only with the i-th Z.
func toric3DLogicals(lx, ly, lz int) logicalSpec {
	var spec logicalSpec
	spec.xs = [][]Coord{
		grid3D(1, 2*lx, 0, 1, 0, 1),
		grid3D(0, 1, 1, 2*ly, 0, 1),
		grid3D(0, 1, 0, 1, 1, 2*lz),
	}
	spec.zs = [][]Coord{
		grid3D(1, 2, 0, 2*ly, 0, 2*lz),
		grid3D(0, 2*lx, 1, 2, 0, 2*lz),
		grid3D(0, 2*lx, 0, 2*ly, 1, 2),
	}
	return spec
}
