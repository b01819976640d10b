// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Index is an immutable bijection between coordinates and 0..Len()-1,
// numbered in insertion order.
type Index struct {
	name   string
	coords []Coord
	pos    map[Coord]int
}

func newIndex(name string, coords []Coord) *Index {
	pos := make(map[Coord]int, len(coords))
	for i, c := range coords {
		pos[c] = i
	}
	return &Index{name: name, coords: coords, pos: pos}
}

// Len returns the number of indexed coordinates.
func (ix *Index) Len() int { return len(ix.coords) }

// Contains reports whether c is indexed.
func (ix *Index) Contains(c Coord) bool {
	_, ok := ix.pos[c]
	return ok
}

// Position returns the dense index of c, or ErrInvalidCoordinate.
func (ix *Index) Position(c Coord) (int, error) {
	i, ok := ix.pos[c]
	if !ok {
		return -1, fmt.Errorf("%s %s: %w", ix.name, c, ErrInvalidCoordinate)
	}
	return i, nil
}

// At returns the coordinate at dense index i.
func (ix *Index) At(i int) (Coord, bool) {
	if i < 0 || i >= len(ix.coords) {
		return Coord{}, false
	}
	return ix.coords[i], true
}

// Coords returns a copy of the coordinates in index order.
func (ix *Index) Coords() []Coord {
	out := make([]Coord, len(ix.coords))
	copy(out, ix.coords)
	return out
}
