// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
)

// MethodDirect is plain Monte Carlo sampling, the only supported method.
const MethodDirect = "direct"

// Component names a registry entry and its parameters.
type Component struct {
	Name   string
	Params Params
}

func (c *Component) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", c.Name)
	p := c.Params
	enc.ObjectKey("parameters", &p)
}

func (c *Component) IsNil() bool { return c == nil }

func (c *Component) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&c.Name)
	case "parameters":
		c.Params = NewParams()
		return dec.Object(&c.Params)
	}
	return nil
}

func (c *Component) NKeys() int { return 0 }

// CodeRange is a code name with one parameter set per lattice size.
type CodeRange struct {
	Name   string
	Params []Params
}

func (c *CodeRange) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", c.Name)
	enc.ArrayKey("parameters", paramsList(c.Params))
}

func (c *CodeRange) IsNil() bool { return c == nil }

func (c *CodeRange) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&c.Name)
	case "parameters":
		var l paramsList
		if err := dec.Array(&l); err != nil {
			return err
		}
		c.Params = l
	}
	return nil
}

func (c *CodeRange) NKeys() int { return 0 }

// Input is one parsed input file.
type Input struct {
	Comments   string
	Label      string
	Method     Component
	Code       CodeRange
	ErrorModel Component
	Decoder    Component
	ErrorRates []float64
}

// ranges is the "ranges" object of an input file.
type ranges struct{ in *Input }

func (r ranges) MarshalJSONObject(enc *gojay.Encoder) {
	in := r.in
	enc.StringKey("label", in.Label)
	enc.ObjectKey("method", &in.Method)
	enc.ObjectKey("code", &in.Code)
	enc.ObjectKey("error_model", &in.ErrorModel)
	enc.ObjectKey("decoder", &in.Decoder)
	enc.ArrayKey("error_rate", floatList(in.ErrorRates))
}

func (r ranges) IsNil() bool { return r.in == nil }

func (r ranges) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	in := r.in
	switch key {
	case "label":
		return dec.String(&in.Label)
	case "method":
		return dec.Object(&in.Method)
	case "code":
		return dec.Object(&in.Code)
	case "error_model":
		return dec.Object(&in.ErrorModel)
	case "decoder":
		return dec.Object(&in.Decoder)
	case "error_rate":
		var l floatList
		if err := dec.Array(&l); err != nil {
			return err
		}
		in.ErrorRates = l
	}
	return nil
}

func (r ranges) NKeys() int { return 0 }

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (in *Input) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("comments", in.Comments)
	enc.ObjectKey("ranges", ranges{in})
}

// IsNil implements gojay.MarshalerJSONObject.
func (in *Input) IsNil() bool { return in == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (in *Input) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "comments":
		return dec.String(&in.Comments)
	case "ranges":
		return dec.Object(ranges{in})
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (in *Input) NKeys() int { return 0 }

// ParseInput decodes an input file and checks that it is complete. Names
// are not resolved here; see Registry.Validate.
func ParseInput(r io.Reader) (*Input, error) {
	in := &Input{Method: Component{Name: MethodDirect}}
	dec := gojay.BorrowDecoder(r)
	defer dec.Release()
	if err := dec.DecodeObject(in); err != nil {
		return nil, fmt.Errorf("ParseInput: %w: %w", err, ErrInvalidInput)
	}
	if err := in.check(); err != nil {
		return nil, fmt.Errorf("ParseInput: %w", err)
	}
	return in, nil
}

func (in *Input) check() error {
	switch {
	case in.Code.Name == "":
		return fmt.Errorf("missing code name: %w", ErrInvalidInput)
	case len(in.Code.Params) == 0:
		return fmt.Errorf("code %s has no parameter sets: %w", in.Code.Name, ErrInvalidInput)
	case in.ErrorModel.Name == "":
		return fmt.Errorf("missing error model name: %w", ErrInvalidInput)
	case in.Decoder.Name == "":
		return fmt.Errorf("missing decoder name: %w", ErrInvalidInput)
	case len(in.ErrorRates) == 0:
		return fmt.Errorf("no error rates: %w", ErrInvalidInput)
	}
	return nil
}

// WriteTo encodes in as an input file. It implements io.WriterTo.
func (in *Input) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := gojay.NewEncoder(cw).EncodeObject(in); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Run is one point of an input range: a single code size at a single
// error rate.
type Run struct {
	Label       string
	Method      string
	Code        Component
	ErrorModel  Component
	Decoder     Component
	Probability float64
}

// Runs expands the cartesian product of code parameter sets and error
// rates, code sizes outermost.
func (in *Input) Runs() []Run {
	out := make([]Run, 0, len(in.Code.Params)*len(in.ErrorRates))
	for _, cp := range in.Code.Params {
		for _, p := range in.ErrorRates {
			out = append(out, Run{
				Label:       in.Label,
				Method:      in.Method.Name,
				Code:        Component{Name: in.Code.Name, Params: cp},
				ErrorModel:  in.ErrorModel,
				Decoder:     in.Decoder,
				Probability: p,
			})
		}
	}
	return out
}

// CountRuns parses an input file and returns the number of runs it expands to.
func CountRuns(r io.Reader) (int, error) {
	in, err := ParseInput(r)
	if err != nil {
		return 0, err
	}
	return len(in.Code.Params) * len(in.ErrorRates), nil
}
