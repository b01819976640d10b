// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/lattice"
)

// Sweep3D is the sweep decoder for Z errors on *lattice.Toric3D codes.
// It is safe for concurrent use; per-code lookup tables are built on first
// use and shared by later decodes.
type Sweep3D struct {
	opts   options
	tables sync.Map // *lattice.Toric3D -> *sweepTables
}

var (
	_ Decoder   = (*Sweep3D)(nil)
	_ Reporter  = (*Sweep3D)(nil)
	_ Supporter = (*Sweep3D)(nil)
)

// NewSweep3D returns a sweep decoder configured by opts.
func NewSweep3D(opts ...Option) *Sweep3D {
	d := &Sweep3D{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Label implements Decoder.
func (d *Sweep3D) Label() string { return "Toric 3D Sweep Decoder" }

// MaxSweeps returns the sweep ceiling for code.
func (d *Sweep3D) MaxSweeps(code lattice.Code) (int, error) {
	_, t, err := d.tablesFor(code)
	if err != nil {
		return 0, err
	}
	return d.opts.maxSweepFactor * t.extent, nil
}

func (d *Sweep3D) tablesFor(code lattice.Code) (*lattice.Toric3D, *sweepTables, error) {
	toric, ok := code.(*lattice.Toric3D)
	if !ok || toric == nil {
		return nil, nil, fmt.Errorf("%s on %T: %w", d.Label(), code, ErrUnsupportedCode)
	}
	if v, ok := d.tables.Load(toric); ok {
		return toric, v.(*sweepTables), nil
	}
	t, err := buildTables(toric)
	if err != nil {
		return nil, nil, err
	}
	v, _ := d.tables.LoadOrStore(toric, t)
	return toric, v.(*sweepTables), nil
}

// Supports implements Supporter: only *lattice.Toric3D is accepted.
func (d *Sweep3D) Supports(code lattice.Code) error {
	_, _, err := d.tablesFor(code)
	return err
}

// InitialState copies the face block of syndrome into a fresh signs state.
func (d *Sweep3D) InitialState(code lattice.Code, syndrome *gf2.Vector) (*Signs, error) {
	_, t, err := d.tablesFor(code)
	if err != nil {
		return nil, err
	}
	return initialState(code, t, syndrome)
}

func initialState(code lattice.Code, t *sweepTables, syndrome *gf2.Vector) (*Signs, error) {
	want := lattice.SyndromeLength(code)
	if syndrome == nil || syndrome.Len() != want {
		got := 0
		if syndrome != nil {
			got = syndrome.Len()
		}
		return nil, fmt.Errorf("syndrome length %d, want %d: %w", got, want, ErrDimensionMismatch)
	}
	s := newSigns(t.nFaces)
	for f := 0; f < t.nFaces; f++ {
		if syndrome.Test(f) {
			s.bits.Set(uint(f))
		}
	}
	return s, nil
}

// FlipEdge toggles, in place, the four faces containing the edge at c.
func (d *Sweep3D) FlipEdge(code lattice.Code, signs *Signs, c lattice.Coord) error {
	_, t, err := d.tablesFor(code)
	if err != nil {
		return err
	}
	if signs == nil || signs.n != t.nFaces {
		return fmt.Errorf("FlipEdge: signs: %w", ErrDimensionMismatch)
	}
	q, err := code.Qubits().Position(c)
	if err != nil {
		return fmt.Errorf("FlipEdge: %w", err)
	}
	t.flipEdge(signs, q)
	return nil
}

func (t *sweepTables) flipEdge(s *Signs, q int) {
	for _, f := range t.coboundary[q] {
		s.bits.Flip(uint(f))
	}
}

// SweepMove applies one sweep to signs and returns the new state. Every
// flipped edge toggles its Z bit in correction, a 2n symplectic vector that
// is updated in place. The input signs are left untouched.
func (d *Sweep3D) SweepMove(code lattice.Code, signs *Signs, correction *gf2.Vector) (*Signs, error) {
	_, t, err := d.tablesFor(code)
	if err != nil {
		return nil, err
	}
	if signs == nil || signs.n != t.nFaces {
		return nil, fmt.Errorf("SweepMove: signs: %w", ErrDimensionMismatch)
	}
	if correction == nil || correction.Len() != 2*t.nQubits {
		return nil, fmt.Errorf("SweepMove: correction: %w", ErrDimensionMismatch)
	}
	return t.sweep(signs, correction, d.opts.direction, nil)
}

// sweep computes every flip from the pre-sweep state, then applies them to
// a copy. buf is reused across sweeps when non-nil.
func (t *sweepTables) sweep(old *Signs, correction *gf2.Vector, dir lattice.Axis, buf *[]int32) (*Signs, error) {
	var flips []int32
	if buf != nil {
		flips = (*buf)[:0]
	}

	for v, o := range t.octant {
		xf := old.bits.Test(uint(o[0]))
		yf := old.bits.Test(uint(o[1]))
		zf := old.bits.Test(uint(o[2]))
		switch {
		case xf && yf && zf:
			flips = append(flips, t.edges[v][dir])
		case yf && zf:
			flips = append(flips, t.edges[v][lattice.AxisX])
		case xf && zf:
			flips = append(flips, t.edges[v][lattice.AxisY])
		case xf && yf:
			flips = append(flips, t.edges[v][lattice.AxisZ])
		}
	}

	next := old.Clone()
	for _, q := range flips {
		t.flipEdge(next, int(q))
		if err := correction.Flip(t.nQubits + int(q)); err != nil {
			return nil, fmt.Errorf("sweep: correction: %w", err)
		}
	}
	if buf != nil {
		*buf = flips
	}
	return next, nil
}

// Decode implements Decoder. The returned correction may leave a residual
// syndrome; use DecodeReport to learn why decoding stopped.
func (d *Sweep3D) Decode(code lattice.Code, syndrome *gf2.Vector) (*gf2.Vector, error) {
	r, err := d.DecodeReport(code, syndrome)
	if err != nil {
		return nil, err
	}
	return r.Correction, nil
}

// DecodeReport sweeps until the signs vanish, revisit a configuration, or
// the sweep ceiling is reached.
//
// Complexity: O(S·(V + F/64)) for S sweeps over V vertices and F faces,
// plus O(S·F/64) history memory when cycle detection is on.
func (d *Sweep3D) DecodeReport(code lattice.Code, syndrome *gf2.Vector) (Report, error) {
	_, t, err := d.tablesFor(code)
	if err != nil {
		return Report{}, err
	}
	// Stage 1 (Validate): syndrome length and initial signs.
	signs, err := initialState(code, t, syndrome)
	if err != nil {
		return Report{}, err
	}
	correction, err := gf2.NewBSF(t.nQubits)
	if err != nil {
		return Report{}, fmt.Errorf("DecodeReport: %w", err)
	}
	report := Report{Correction: correction, Outcome: Converged, CycleStart: -1}
	limit := d.opts.maxSweepFactor * t.extent

	var seen *history
	if d.opts.detectCycles {
		seen = newHistory()
		seen.lookupOrAdd(signs, 0)
	}

	// Stage 2: sweep until a terminal condition holds.
	buf := make([]int32, 0, len(t.octant))
	for !signs.IsZero() {
		if report.Sweeps >= limit {
			report.Outcome = SweepLimit
			break
		}
		if signs, err = t.sweep(signs, correction, d.opts.direction, &buf); err != nil {
			return Report{}, fmt.Errorf("DecodeReport: %w", err)
		}
		report.Sweeps++
		if signs.IsZero() || seen == nil {
			continue
		}
		if first := seen.lookupOrAdd(signs, report.Sweeps); first >= 0 {
			report.Outcome = Cycle
			report.CycleStart = first
			break
		}
	}
	report.Residual = signs.Weight()
	return report, nil
}
