// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Rotated lattices stack rotated square layers along z. In a layer at odd z
// qubits sit on (odd,odd) points and checks on (even,even) points in a
// checkerboard: vertices where x+y ≡ 2 (mod 4), faces where x+y ≡ 0.
// Vertical qubits at even z join the vertices of adjacent layers, and a
// vertical face above each layer qubit closes the square between them.
var (
	diagonalDeltas = []Coord{{1, 1, 0}, {-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}}

	rotatedVertexDeltas = append(append([]Coord{}, diagonalDeltas...), Coord{Z: 1}, Coord{Z: -1})

	// vertical faces above a layer qubit, by the diagonal its vertices lie on
	riseFaceDeltas = []Coord{{1, 1, 0}, {-1, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	fallFaceDeltas = []Coord{{1, -1, 0}, {-1, 1, 0}, {0, 0, 1}, {0, 0, -1}}
)

// RotatedToric3D is the rotated 3D toric code: layers periodic in x and y,
// Lz+1 of them at z = 1, 3, …, 2Lz+1, with open top and bottom.
// Bulk vertex checks have weight 6, those on the outer layers weight 5,
// and every face weight 4.
//
// Qubit order: layer qubits (odd,odd,odd), then vertical qubits
// (even,even,even). Face order: layer faces, then vertical faces.
type RotatedToric3D struct {
	stabilizerCode
}

// NewRotatedToric3D builds the [[Lx·Ly·(Lz+1) + Lx·Ly·Lz/2, 2, min(Lx,Ly)]]
// rotated toric code. Lx and Ly must be even so the checkerboard closes
// around the torus.
func NewRotatedToric3D(lx, ly, lz int) (*RotatedToric3D, error) {
	if err := checkSize(lx, ly, lz); err != nil {
		return nil, fmt.Errorf("NewRotatedToric3D: %w", err)
	}
	if lx%2 != 0 || ly%2 != 0 {
		return nil, fmt.Errorf("NewRotatedToric3D: odd extent in %dx%d: %w", lx, ly, ErrInvalidSize)
	}
	var vs, fs [][2]int
	for x := 0; x < 2*lx; x += 2 {
		for y := 0; y < 2*ly; y += 2 {
			if (x+y)%4 == 2 {
				vs = append(vs, [2]int{x, y})
			} else {
				fs = append(fs, [2]int{x, y})
			}
		}
	}
	r := &RotatedToric3D{}
	l := rotatedLayout(lx, ly, lz, vs, fs)
	l.label = fmt.Sprintf("Rotated toric %dx%dx%d", lx, ly, lz)
	l.nkd = NKD{N: len(l.qubits), K: 2, D: min(lx, ly)}
	l.periodic = true
	l.openZ = true
	l.logicals = func() logicalSpec {
		return logicalSpec{
			xs: [][]Coord{layerRow(lx, 1, 1), layerColumn(ly, 1, 1)},
			zs: [][]Coord{layerColumn(ly, 1, lz+1), layerRow(lx, 1, lz+1)},
		}
	}
	if err := r.build(l); err != nil {
		return nil, fmt.Errorf("NewRotatedToric3D: %w", err)
	}
	return r, nil
}

// RotatedPlanar3D is the rotated 3D planar code: Lx×Ly qubits per layer,
// Lz+1 layers. Vertex checks run out to the y boundaries (y=0 and y=2Ly)
// and face checks to the x boundaries, where each keeps the two layer
// qubits it still touches.
type RotatedPlanar3D struct {
	stabilizerCode
}

// NewRotatedPlanar3D builds the rotated planar code with k=1. Its distance is
// min(Lx, Ly·(Lz+1)): X logicals cross a layer along x, Z logicals cut every
// layer along y.
func NewRotatedPlanar3D(lx, ly, lz int) (*RotatedPlanar3D, error) {
	if err := checkSize(lx, ly, lz); err != nil {
		return nil, fmt.Errorf("NewRotatedPlanar3D: %w", err)
	}
	var vs, fs [][2]int
	for x := 0; x <= 2*lx; x += 2 {
		for y := 0; y <= 2*ly; y += 2 {
			switch {
			case (x+y)%4 == 2 && x > 0 && x < 2*lx:
				vs = append(vs, [2]int{x, y})
			case (x+y)%4 == 0 && y > 0 && y < 2*ly:
				fs = append(fs, [2]int{x, y})
			}
		}
	}
	r := &RotatedPlanar3D{}
	l := rotatedLayout(lx, ly, lz, vs, fs)
	l.label = fmt.Sprintf("Rotated planar %dx%dx%d", lx, ly, lz)
	l.nkd = NKD{N: len(l.qubits), K: 1, D: min(lx, ly*(lz+1))}
	l.logicals = func() logicalSpec {
		return logicalSpec{
			xs: [][]Coord{layerRow(lx, 1, 1)},
			zs: [][]Coord{layerColumn(ly, 1, lz+1)},
		}
	}
	if err := r.build(l); err != nil {
		return nil, fmt.Errorf("NewRotatedPlanar3D: %w", err)
	}
	return r, nil
}

// Extents returns (Lx, Ly, Lz).
func (r *RotatedToric3D) Extents() (lx, ly, lz int) { return r.size[0], r.size[1], r.size[2] }

// Extents returns (Lx, Ly, Lz).
func (r *RotatedPlanar3D) Extents() (lx, ly, lz int) { return r.size[0], r.size[1], r.size[2] }

// rotatedLayout lays out the shared part of both rotated codes from the
// (x,y) points of one layer's vertices and faces.
func rotatedLayout(lx, ly, lz int, vs, fs [][2]int) layout {
	l := layout{
		size:         []int{lx, ly, lz},
		vertexDeltas: rotatedVertexDeltas,
		faceDeltas:   rotatedFaceDeltas,
		axis:         rotatedAxis,
	}
	for x := 1; x < 2*lx; x += 2 {
		for y := 1; y < 2*ly; y += 2 {
			for z := 1; z <= 2*lz+1; z += 2 {
				l.qubits = append(l.qubits, Coord{x, y, z})
			}
		}
	}
	for _, p := range vs {
		for z := 2; z <= 2*lz; z += 2 {
			l.qubits = append(l.qubits, Coord{p[0], p[1], z})
		}
		for z := 1; z <= 2*lz+1; z += 2 {
			l.vertices = append(l.vertices, Coord{p[0], p[1], z})
		}
	}
	for _, p := range fs {
		for z := 1; z <= 2*lz+1; z += 2 {
			l.faces = append(l.faces, Coord{p[0], p[1], z})
		}
	}
	for x := 1; x < 2*lx; x += 2 {
		for y := 1; y < 2*ly; y += 2 {
			for z := 2; z <= 2*lz; z += 2 {
				l.faces = append(l.faces, Coord{x, y, z})
			}
		}
	}
	return l
}

func rotatedFaceDeltas(c Coord) []Coord {
	switch {
	case c.Z%2 != 0:
		return diagonalDeltas
	case (c.X+c.Y)%4 == 0:
		return riseFaceDeltas
	default:
		return fallFaceDeltas
	}
}

// rotatedAxis reports vertical qubits as AxisZ. A layer qubit joins two
// vertices along one diagonal: AxisX for (1,1), AxisY for (1,-1).
func rotatedAxis(c Coord) (Axis, bool) {
	ox, oy, oz := c.X%2 != 0, c.Y%2 != 0, c.Z%2 != 0
	switch {
	case ox && oy && oz:
		if mod(c.X+c.Y, 4) == 0 {
			return AxisX, true
		}
		return AxisY, true
	case !ox && !oy && !oz:
		return AxisZ, true
	}
	return 0, false
}

// layerRow lists the layer qubits on row y of the lowest n layers.
func layerRow(lx, y, n int) []Coord {
	var out []Coord
	for x := 1; x < 2*lx; x += 2 {
		for z := 1; z < 2*n; z += 2 {
			out = append(out, Coord{x, y, z})
		}
	}
	return out
}

// layerColumn lists the layer qubits on column x of the lowest n layers.
func layerColumn(ly, x, n int) []Coord {
	var out []Coord
	for y := 1; y < 2*ly; y += 2 {
		for z := 1; z < 2*n; z += 2 {
			out = append(out, Coord{x, y, z})
		}
	}
	return out
}
