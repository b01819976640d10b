// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvqec/gf2"
)

// logicalSpec lists, per logical operator, the sites it acts on.
type logicalSpec struct {
	xs, zs [][]Coord
}

// layout is what each concrete code contributes to the shared base.
type layout struct {
	label    string
	size     []int
	nkd      NKD
	periodic bool
	// openZ keeps a periodic layout open along z.
	openZ    bool
	qubits   []Coord
	vertices []Coord
	faces    []Coord
	// vertexDeltas are the unit steps from a vertex to its edges.
	vertexDeltas []Coord
	// faceDeltas returns the unit steps from face c to its edges.
	faceDeltas func(c Coord) []Coord
	axis       func(c Coord) (Axis, bool)
	logicals   func() logicalSpec
}

// stabilizerCode is the shared implementation of Code. Everything except
// the logical operators is derived once in build.
type stabilizerCode struct {
	layout
	period [3]int

	qubitIx, vertexIx, faceIx *Index

	stabilizers, hx, hz *gf2.Matrix

	logicalOnce          sync.Once
	logicalXs, logicalZs *gf2.Matrix
}

// build validates the layout and derives indices and check matrices.
func (s *stabilizerCode) build(l layout) error {
	s.layout = l
	for i := 0; i < 3; i++ {
		s.period[i] = 2
		if i < len(l.size) {
			s.period[i] = 2 * l.size[i]
		}
	}
	s.qubitIx = newIndex("qubit", l.qubits)
	s.vertexIx = newIndex("vertex", l.vertices)
	s.faceIx = newIndex("face", l.faces)

	n := s.qubitIx.Len()
	var err error
	if s.stabilizers, err = gf2.NewMatrix(2 * n); err != nil {
		return err
	}
	if s.hx, err = gf2.NewMatrix(n); err != nil {
		return err
	}
	if s.hz, err = gf2.NewMatrix(n); err != nil {
		return err
	}

	// Stage 1: X-type face checks.
	for _, f := range l.faces {
		cols, err := s.supportIndices(s.faceSupport(f))
		if err != nil {
			return err
		}
		if err = s.stabilizers.AppendRow(cols...); err != nil {
			return err
		}
		if err = s.hz.AppendRow(cols...); err != nil {
			return err
		}
	}
	// Stage 2: Z-type vertex checks.
	for _, v := range l.vertices {
		cols, err := s.supportIndices(s.vertexSupport(v))
		if err != nil {
			return err
		}
		if err = s.hx.AppendRow(cols...); err != nil {
			return err
		}
		for i := range cols {
			cols[i] += n
		}
		if err = s.stabilizers.AppendRow(cols...); err != nil {
			return err
		}
	}
	return nil
}

func (s *stabilizerCode) supportIndices(sites []Coord) ([]int, error) {
	out := make([]int, len(sites))
	for i, q := range sites {
		idx, err := s.qubitIx.Position(q)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

func (s *stabilizerCode) Label() string { return s.label }

func (s *stabilizerCode) Dimension() int { return len(s.size) }

func (s *stabilizerCode) Size() []int {
	out := make([]int, len(s.size))
	copy(out, s.size)
	return out
}

func (s *stabilizerCode) NKD() NKD { return s.nkd }

func (s *stabilizerCode) Qubits() *Index   { return s.qubitIx }
func (s *stabilizerCode) Vertices() *Index { return s.vertexIx }
func (s *stabilizerCode) Faces() *Index    { return s.faceIx }

func (s *stabilizerCode) IsQubit(c Coord) bool { return s.qubitIx.Contains(c) }

func (s *stabilizerCode) QubitAxis(c Coord) (Axis, error) {
	if !s.qubitIx.Contains(c) {
		return 0, fmt.Errorf("QubitAxis %s: %w", c, ErrInvalidCoordinate)
	}
	a, _ := s.axis(c)
	return a, nil
}

func (s *stabilizerCode) Wrap(c Coord) Coord {
	if !s.periodic {
		return c
	}
	z := c.Z
	if !s.openZ {
		z = mod(z, s.period[2])
	}
	return Coord{mod(c.X, s.period[0]), mod(c.Y, s.period[1]), z}
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// neighbours returns the qubits reached from c by deltas, in delta order,
// dropping steps that leave an open lattice.
func (s *stabilizerCode) neighbours(c Coord, deltas []Coord) []Coord {
	out := make([]Coord, 0, len(deltas))
	for _, d := range deltas {
		q := s.Wrap(c.Add(d))
		if s.qubitIx.Contains(q) {
			out = append(out, q)
		}
	}
	return out
}

func (s *stabilizerCode) vertexSupport(c Coord) []Coord { return s.neighbours(c, s.vertexDeltas) }
func (s *stabilizerCode) faceSupport(c Coord) []Coord   { return s.neighbours(c, s.faceDeltas(c)) }

func (s *stabilizerCode) VertexSupport(c Coord) ([]Coord, error) {
	if !s.vertexIx.Contains(c) {
		return nil, fmt.Errorf("VertexSupport %s: %w", c, ErrInvalidCoordinate)
	}
	return s.vertexSupport(c), nil
}

func (s *stabilizerCode) FaceSupport(c Coord) ([]Coord, error) {
	if !s.faceIx.Contains(c) {
		return nil, fmt.Errorf("FaceSupport %s: %w", c, ErrInvalidCoordinate)
	}
	return s.faceSupport(c), nil
}

func (s *stabilizerCode) Stabilizers() *gf2.Matrix { return s.stabilizers }
func (s *stabilizerCode) Hx() *gf2.Matrix          { return s.hx }
func (s *stabilizerCode) Hz() *gf2.Matrix          { return s.hz }

func (s *stabilizerCode) LogicalXs() *gf2.Matrix {
	s.logicalOnce.Do(s.buildLogicals)
	return s.logicalXs
}

func (s *stabilizerCode) LogicalZs() *gf2.Matrix {
	s.logicalOnce.Do(s.buildLogicals)
	return s.logicalZs
}

// buildLogicals runs at most once per code. Logical sites are fixed by the
// layout, so a lookup failure here is a layout bug.
func (s *stabilizerCode) buildLogicals() {
	spec := s.logicals()
	n := s.qubitIx.Len()
	s.logicalXs = s.logicalMatrix(spec.xs, 0)
	s.logicalZs = s.logicalMatrix(spec.zs, n)
}

func (s *stabilizerCode) logicalMatrix(ops [][]Coord, offset int) *gf2.Matrix {
	m, err := gf2.NewMatrix(2 * s.qubitIx.Len())
	if err != nil {
		panic(fmt.Sprintf("lattice: %s logical operators: %v", s.label, err))
	}
	for _, sites := range ops {
		cols, err := s.supportIndices(sites)
		if err != nil {
			panic(fmt.Sprintf("lattice: %s logical operator: %v", s.label, err))
		}
		for i := range cols {
			cols[i] += offset
		}
		if err = m.AppendRow(cols...); err != nil {
			panic(fmt.Sprintf("lattice: %s logical operator: %v", s.label, err))
		}
	}
	return m
}

// checkSize validates every extent against MinSize.
func checkSize(size ...int) error {
	for _, l := range size {
		if l < MinSize {
			return fmt.Errorf("size %v (min %d): %w", size, MinSize, ErrInvalidSize)
		}
	}
	return nil
}
