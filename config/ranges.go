// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultRangeStep is the step of a "min:max" range without one.
const DefaultRangeStep = 0.005

// ParseRange reads an error-rate expression:
//
//	"0.1"             a single value
//	"0.1,0.2,0.25"    a list
//	"0:0.05"          min:max with DefaultRangeStep, max included
//	"0:0.05:0.01"     min:max:step
//
// Range values are rounded to 12 decimals so 0.1+0.2 prints as 0.3.
func ParseRange(expr string) ([]float64, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case strings.Contains(expr, ":"):
		parts := strings.Split(expr, ":")
		if len(parts) > 3 {
			return nil, fmt.Errorf("ParseRange(%q): %w", expr, ErrInvalidRange)
		}
		nums, err := parseFloats(parts)
		if err != nil {
			return nil, fmt.Errorf("ParseRange(%q): %w", expr, err)
		}
		lo, hi, step := nums[0], nums[1], DefaultRangeStep
		if len(nums) == 3 {
			step = nums[2]
		}
		if step <= 0 || hi < lo {
			return nil, fmt.Errorf("ParseRange(%q): %w", expr, ErrInvalidRange)
		}
		n := int(math.Floor((hi-lo)/step+1e-9)) + 1
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Round((lo+float64(i)*step)*1e12) / 1e12
		}
		return out, nil
	default:
		out, err := parseFloats(strings.Split(expr, ","))
		if err != nil {
			return nil, fmt.Errorf("ParseRange(%q): %w", expr, err)
		}
		return out, nil
	}
}

// ParseBiasRatios reads a comma-separated list of bias ratios; "inf"
// stands for +Inf.
func ParseBiasRatios(expr string) ([]float64, error) {
	parts := strings.Split(expr, ",")
	out := make([]float64, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s == "inf" {
			out = append(out, math.Inf(1))
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("ParseBiasRatios(%q): %q: %w", expr, s, ErrInvalidRange)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatBias renders a bias ratio the way input labels use it.
func FormatBias(eta float64) string {
	if math.IsInf(eta, 1) {
		return "inf"
	}
	return strconv.FormatFloat(eta, 'g', -1, 64)
}

func parseFloats(parts []string) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrInvalidRange)
		}
		out[i] = v
	}
	return out, nil
}
