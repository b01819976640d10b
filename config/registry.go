// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvqec/decoder"
	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/noise"
	"github.com/katalvlaran/lvqec/simulation"
)

// Registry names.
const (
	ToricCode3D  = "ToricCode3D"
	ToricCode2D  = "ToricCode2D"
	PlanarCode2D = "PlanarCode2D"

	RotatedToricCode3D  = "RotatedToricCode3D"
	RotatedPlanarCode3D = "RotatedPlanarCode3D"

	PauliErrorModel          = "PauliErrorModel"
	DeformedAxisErrorModel   = "DeformedAxisErrorModel"
	DeformedRandomErrorModel = "DeformedRandomErrorModel"

	SweepDecoder3D = "SweepDecoder3D"
)

type (
	codeFactory    func(Params) (lattice.Code, error)
	modelFactory   func(p Params, seed int64) (noise.ErrorModel, error)
	decoderFactory func(Params) (decoder.Decoder, error)
)

// Registry resolves names to constructors. The set of names is fixed.
// A Registry is safe for concurrent use.
type Registry struct {
	codes    map[string]codeFactory
	models   map[string]modelFactory
	decoders map[string]decoderFactory
}

// NewRegistry returns the registry of every built-in component.
func NewRegistry() *Registry {
	return &Registry{
		codes: map[string]codeFactory{
			ToricCode3D:  newToric3D,
			ToricCode2D:  newToric2D,
			PlanarCode2D: newPlanar2D,

			RotatedToricCode3D:  newRotatedToric3D,
			RotatedPlanarCode3D: newRotatedPlanar3D,
		},
		models: map[string]modelFactory{
			PauliErrorModel:          newPauli,
			DeformedAxisErrorModel:   newDeformedAxis,
			DeformedRandomErrorModel: newDeformedRandom,
		},
		decoders: map[string]decoderFactory{
			SweepDecoder3D: newSweep3D,
		},
	}
}

// CodeNames returns the code names in sorted order.
func (r *Registry) CodeNames() []string { return sortedKeys(r.codes) }

// ErrorModelNames returns the error model names in sorted order.
func (r *Registry) ErrorModelNames() []string { return sortedKeys(r.models) }

// DecoderNames returns the decoder names in sorted order.
func (r *Registry) DecoderNames() []string { return sortedKeys(r.decoders) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Code builds the named code.
func (r *Registry) Code(c Component) (lattice.Code, error) {
	f, ok := r.codes[c.Name]
	if !ok {
		return nil, fmt.Errorf("code %q: %w", c.Name, ErrUnknownName)
	}
	code, err := f(c.Params)
	if err != nil {
		return nil, fmt.Errorf("code %s: %w", c.Name, err)
	}
	return code, nil
}

// ErrorModel builds the named error model; seed feeds models that keep an
// internal stream.
func (r *Registry) ErrorModel(c Component, seed int64) (noise.ErrorModel, error) {
	f, ok := r.models[c.Name]
	if !ok {
		return nil, fmt.Errorf("error model %q: %w", c.Name, ErrUnknownName)
	}
	m, err := f(c.Params, seed)
	if err != nil {
		return nil, fmt.Errorf("error model %s: %w", c.Name, err)
	}
	return m, nil
}

// Decoder builds the named decoder.
func (r *Registry) Decoder(c Component) (decoder.Decoder, error) {
	f, ok := r.decoders[c.Name]
	if !ok {
		return nil, fmt.Errorf("decoder %q: %w", c.Name, ErrUnknownName)
	}
	d, err := f(c.Params)
	if err != nil {
		return nil, fmt.Errorf("decoder %s: %w", c.Name, err)
	}
	return d, nil
}

// Validate checks every name in the input against the registry.
func (r *Registry) Validate(in *Input) error {
	if in.Method.Name != MethodDirect {
		return fmt.Errorf("method %q: %w", in.Method.Name, ErrUnknownName)
	}
	if _, ok := r.codes[in.Code.Name]; !ok {
		return fmt.Errorf("code %q: %w", in.Code.Name, ErrUnknownName)
	}
	if _, ok := r.models[in.ErrorModel.Name]; !ok {
		return fmt.Errorf("error model %q: %w", in.ErrorModel.Name, ErrUnknownName)
	}
	if _, ok := r.decoders[in.Decoder.Name]; !ok {
		return fmt.Errorf("decoder %q: %w", in.Decoder.Name, ErrUnknownName)
	}
	return nil
}

// Build validates in and constructs one simulation per run. Codes are
// built once per parameter set and shared; the error model and decoder
// are shared by every run. No trial runs if any component fails.
func (r *Registry) Build(in *Input, seed int64, opts ...simulation.Option) ([]*simulation.Simulation, error) {
	if err := r.Validate(in); err != nil {
		return nil, fmt.Errorf("Build %s: %w", in.Label, err)
	}
	model, err := r.ErrorModel(in.ErrorModel, seed)
	if err != nil {
		return nil, fmt.Errorf("Build %s: %w", in.Label, err)
	}
	dec, err := r.Decoder(in.Decoder)
	if err != nil {
		return nil, fmt.Errorf("Build %s: %w", in.Label, err)
	}

	codes := make(map[string]lattice.Code)
	runs := in.Runs()
	out := make([]*simulation.Simulation, 0, len(runs))
	for _, run := range runs {
		fp := run.Code.Params.fingerprint()
		code, ok := codes[fp]
		if !ok {
			if code, err = r.Code(run.Code); err != nil {
				return nil, fmt.Errorf("Build %s: %w", in.Label, err)
			}
			if sup, ok := dec.(decoder.Supporter); ok {
				if err = sup.Supports(code); err != nil {
					return nil, fmt.Errorf("Build %s: %w", in.Label, err)
				}
			}
			codes[fp] = code
		}
		sim, err := simulation.New(code, model, dec, run.Probability, opts...)
		if err != nil {
			return nil, fmt.Errorf("Build %s: %w", in.Label, err)
		}
		out = append(out, sim)
	}
	return out, nil
}

// sizes reads L_x, L_y, L_z (up to dim of them); L_y and L_z default to L_x.
func sizes(p Params, dim int) ([]int, error) {
	lx, err := p.Int("L_x", 0)
	if err != nil {
		return nil, err
	}
	if lx == 0 {
		return nil, fmt.Errorf("missing L_x: %w", ErrInvalidParameter)
	}
	out := []int{lx}
	for _, key := range []string{"L_y", "L_z"}[:dim-1] {
		v, err := p.Int(key, lx)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func newToric3D(p Params) (lattice.Code, error) {
	l, err := sizes(p, 3)
	if err != nil {
		return nil, err
	}
	return lattice.NewToric3D(l[0], l[1], l[2])
}

func newToric2D(p Params) (lattice.Code, error) {
	l, err := sizes(p, 2)
	if err != nil {
		return nil, err
	}
	return lattice.NewToric2D(l[0], l[1])
}

func newPlanar2D(p Params) (lattice.Code, error) {
	l, err := sizes(p, 2)
	if err != nil {
		return nil, err
	}
	return lattice.NewPlanar2D(l[0], l[1])
}

func newRotatedToric3D(p Params) (lattice.Code, error) {
	l, err := sizes(p, 3)
	if err != nil {
		return nil, err
	}
	return lattice.NewRotatedToric3D(l[0], l[1], l[2])
}

func newRotatedPlanar3D(p Params) (lattice.Code, error) {
	l, err := sizes(p, 3)
	if err != nil {
		return nil, err
	}
	return lattice.NewRotatedPlanar3D(l[0], l[1], l[2])
}

func direction(p Params) (rx, ry, rz float64) {
	return p.Float("r_x", 1.0/3), p.Float("r_y", 1.0/3), p.Float("r_z", 1.0/3)
}

func newPauli(p Params, _ int64) (noise.ErrorModel, error) {
	return noise.NewPauli(direction(p))
}

func newDeformedAxis(p Params, _ int64) (noise.ErrorModel, error) {
	axis, err := lattice.ParseAxis(p.String("deformation_name", "z"))
	if err != nil {
		return nil, err
	}
	rx, ry, rz := direction(p)
	return noise.NewDeformedAxis(rx, ry, rz, axis)
}

func newDeformedRandom(p Params, seed int64) (noise.ErrorModel, error) {
	rx, ry, rz := direction(p)
	return noise.NewDeformedRandom(rx, ry, rz, p.Float("p_xz", 0), p.Float("p_yz", 0), seed)
}

func newSweep3D(p Params) (decoder.Decoder, error) {
	var opts []decoder.Option
	factor, err := p.Int("max_sweep_factor", decoder.DefaultMaxSweepFactor)
	if err != nil {
		return nil, err
	}
	if factor < 1 {
		return nil, fmt.Errorf("max_sweep_factor=%d: %w", factor, ErrInvalidParameter)
	}
	opts = append(opts, decoder.WithMaxSweepFactor(factor))
	if s := p.String("default_direction", ""); s != "" {
		axis, err := lattice.ParseAxis(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, decoder.WithDefaultDirection(axis))
	}
	opts = append(opts, decoder.WithCycleDetection(p.Float("cycle_detection", 1) != 0))
	return decoder.NewSweep3D(opts...), nil
}
