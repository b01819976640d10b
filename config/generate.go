// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/lvqec/gf2"
	"github.com/katalvlaran/lvqec/noise"
)

// Size ratios for generated inputs.
const (
	RatioEqual   = "equal"   // L x L x L
	RatioCoprime = "coprime" // L x (L+1) x L
)

// GenerateOptions describes a family of inputs, one per bias ratio.
type GenerateOptions struct {
	// Label prefixes every input label; "input" when empty.
	Label      string
	CodeName   string
	Sizes      []int
	Ratio      string
	ErrorModel string
	// DeformationName is copied into the error model parameters when set.
	DeformationName string
	Decoder         Component
	Bias            gf2.Pauli
	Etas            []float64
	ErrorRates      []float64
}

// GenerateInputs builds one Input per bias ratio, labelled
// "<label>_bias_<eta>".
func GenerateInputs(o GenerateOptions) ([]*Input, error) {
	// Stage 1 (Validate)
	if o.CodeName == "" || len(o.Sizes) == 0 || len(o.Etas) == 0 || len(o.ErrorRates) == 0 {
		return nil, fmt.Errorf("GenerateInputs: code, sizes, etas and error rates are required: %w", ErrInvalidInput)
	}
	ratio := o.Ratio
	if ratio == "" {
		ratio = RatioEqual
	}
	if ratio != RatioEqual && ratio != RatioCoprime {
		return nil, fmt.Errorf("GenerateInputs: ratio %q: %w", o.Ratio, ErrInvalidParameter)
	}
	label := o.Label
	if label == "" {
		label = "input"
	}
	model := o.ErrorModel
	if model == "" {
		model = PauliErrorModel
	}

	// Stage 2: code sizes are shared by every input.
	codeParams := make([]Params, len(o.Sizes))
	for i, l := range o.Sizes {
		if l < 1 {
			return nil, fmt.Errorf("GenerateInputs: size %d: %w", l, ErrInvalidParameter)
		}
		p := NewParams()
		p.SetNumber("L_x", float64(l))
		p.SetNumber("L_y", float64(l))
		if ratio == RatioCoprime {
			p.SetNumber("L_y", float64(l+1))
		}
		p.SetNumber("L_z", float64(l))
		codeParams[i] = p
	}

	// Stage 3: one input per eta.
	out := make([]*Input, 0, len(o.Etas))
	for _, eta := range o.Etas {
		dir, err := noise.DirectionFromBias(o.Bias, eta)
		if err != nil {
			return nil, fmt.Errorf("GenerateInputs: %w", err)
		}
		mp := NewParams()
		mp.SetNumber("r_x", dir.X)
		mp.SetNumber("r_y", dir.Y)
		mp.SetNumber("r_z", dir.Z)
		if o.DeformationName != "" {
			mp.SetString("deformation_name", o.DeformationName)
		}
		dec := o.Decoder
		if dec.Params.Numbers == nil && dec.Params.Strings == nil {
			dec.Params = NewParams()
		}
		out = append(out, &Input{
			Label:      label + "_bias_" + FormatBias(eta),
			Method:     Component{Name: MethodDirect, Params: NewParams()},
			Code:       CodeRange{Name: o.CodeName, Params: codeParams},
			ErrorModel: Component{Name: model, Params: mp},
			Decoder:    dec,
			ErrorRates: append([]float64(nil), o.ErrorRates...),
		})
	}
	return out, nil
}
