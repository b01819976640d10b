// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/francoispqt/gojay"
)

// stringParams lists the parameter keys whose values are strings; every
// other parameter is numeric.
var stringParams = map[string]bool{
	"deformation_name":  true,
	"default_direction": true,
}

// Params is a flat parameter object with numeric and string values.
type Params struct {
	Numbers map[string]float64
	Strings map[string]string
}

// NewParams returns empty parameters.
func NewParams() Params {
	return Params{Numbers: map[string]float64{}, Strings: map[string]string{}}
}

// SetNumber stores a numeric parameter.
func (p *Params) SetNumber(key string, v float64) {
	if p.Numbers == nil {
		p.Numbers = map[string]float64{}
	}
	p.Numbers[key] = v
}

// SetString stores a string parameter.
func (p *Params) SetString(key, v string) {
	if p.Strings == nil {
		p.Strings = map[string]string{}
	}
	p.Strings[key] = v
}

// Float returns the numeric parameter key or def.
func (p Params) Float(key string, def float64) float64 {
	if v, ok := p.Numbers[key]; ok {
		return v
	}
	return def
}

// Int returns the numeric parameter key as an integer, or def when absent.
// Non-integral values fail with ErrInvalidParameter.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p.Numbers[key]
	if !ok {
		return def, nil
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s=%v: %w", key, v, ErrInvalidParameter)
	}
	return int(v), nil
}

// String returns the string parameter key or def.
func (p Params) String(key, def string) string {
	if v, ok := p.Strings[key]; ok {
		return v
	}
	return def
}

// Len returns the number of parameters.
func (p Params) Len() int { return len(p.Numbers) + len(p.Strings) }

// keys returns every key in sorted order.
func (p Params) keys() []string {
	out := make([]string, 0, p.Len())
	for k := range p.Numbers {
		out = append(out, k)
	}
	for k := range p.Strings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// fingerprint is a stable textual form used to share built components.
func (p Params) fingerprint() string {
	var b strings.Builder
	for _, k := range p.keys() {
		if v, ok := p.Strings[k]; ok {
			fmt.Fprintf(&b, "%s=%q;", k, v)
		} else {
			fmt.Fprintf(&b, "%s=%v;", k, p.Numbers[k])
		}
	}
	return b.String()
}

// MarshalJSONObject implements gojay.MarshalerJSONObject with sorted keys.
func (p *Params) MarshalJSONObject(enc *gojay.Encoder) {
	for _, k := range p.keys() {
		if v, ok := p.Strings[k]; ok {
			enc.StringKey(k, v)
		} else {
			enc.Float64Key(k, p.Numbers[k])
		}
	}
}

// IsNil implements gojay.MarshalerJSONObject.
func (p *Params) IsNil() bool { return p == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (p *Params) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	if stringParams[key] {
		s, err := decodeString(dec)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		p.SetString(key, s)
		return nil
	}
	v, err := decodeNumber(dec)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	p.SetNumber(key, v)
	return nil
}

// decodeNumber reads the next value and fails unless it is a JSON number.
// gojay's Float64 reads strings and null as 0 without an error.
func decodeNumber(dec *gojay.Decoder) (float64, error) {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrInvalidParameter)
	}
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, fmt.Errorf("%s is not a number: %w", string(raw), ErrInvalidParameter)
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", string(raw), ErrInvalidParameter)
	}
	return v, nil
}

// decodeString reads the next value and fails unless it is a JSON string.
func decodeString(dec *gojay.Decoder) (string, error) {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrInvalidParameter)
	}
	if len(raw) == 0 || raw[0] != '"' {
		return "", fmt.Errorf("%s is not a string: %w", string(raw), ErrInvalidParameter)
	}
	var s string
	if err := gojay.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s: %v: %w", string(raw), err, ErrInvalidParameter)
	}
	return s, nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (p *Params) NKeys() int { return 0 }

// paramsList is a JSON array of parameter objects.
type paramsList []Params

func (l paramsList) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range l {
		enc.Object(&l[i])
	}
}

func (l paramsList) IsNil() bool { return l == nil }

func (l *paramsList) UnmarshalJSONArray(dec *gojay.Decoder) error {
	p := NewParams()
	if err := dec.Object(&p); err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

// floatList is a JSON array of numbers.
type floatList []float64

func (l floatList) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range l {
		enc.Float64(v)
	}
}

func (l floatList) IsNil() bool { return l == nil }

func (l *floatList) UnmarshalJSONArray(dec *gojay.Decoder) error {
	v, err := decodeNumber(dec)
	if err != nil {
		return err
	}
	*l = append(*l, v)
	return nil
}
