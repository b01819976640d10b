// SPDX-License-Identifier: MIT

package results

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/francoispqt/gojay"
)

// Key identifies the experiment a record belongs to.
type Key struct {
	Code        string
	ErrorModel  string
	Decoder     string
	Probability float64
}

// String formats the key for logs and error messages.
func (k Key) String() string {
	return fmt.Sprintf("%s | %s | %s | p=%s", k.Code, k.ErrorModel, k.Decoder,
		strconv.FormatFloat(k.Probability, 'g', -1, 64))
}

// less orders keys by code, model, decoder, then probability.
func (k Key) less(o Key) bool {
	switch {
	case k.Code != o.Code:
		return k.Code < o.Code
	case k.ErrorModel != o.ErrorModel:
		return k.ErrorModel < o.ErrorModel
	case k.Decoder != o.Decoder:
		return k.Decoder < o.Decoder
	}
	return k.Probability < o.Probability
}

// Record is the summary of a batch of trials.
type Record struct {
	Key
	// Size is the lattice extents; N, K, D the code parameters.
	Size    []int
	N, K, D int

	Trials   int64
	Failures int64
	// LogicalErrors[i] counts trials whose residual flipped logical i;
	// entries [0,k) are measured against logical Xs, [k,2k) against Zs.
	LogicalErrors []int64
	// Cycles and SweepLimits count decodes that stopped without converging.
	Cycles      int64
	SweepLimits int64
	WallTime    time.Duration
}

// ErrorRate returns Failures/Trials, 0 for an empty record.
func (r *Record) ErrorRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Failures) / float64(r.Trials)
}

// StdErr returns the binomial standard error of ErrorRate.
func (r *Record) StdErr() float64 {
	if r.Trials == 0 {
		return 0
	}
	p := r.ErrorRate()
	return math.Sqrt(p * (1 - p) / float64(r.Trials))
}

// Validate reports ErrMalformed for negative counts.
func (r *Record) Validate() error {
	if r.Trials < 0 || r.Failures < 0 || r.Failures > r.Trials || r.Cycles < 0 || r.SweepLimits < 0 {
		return fmt.Errorf("record %s: counts: %w", r.Key, ErrMalformed)
	}
	for _, c := range r.LogicalErrors {
		if c < 0 {
			return fmt.Errorf("record %s: logical counts: %w", r.Key, ErrMalformed)
		}
	}
	return nil
}

// Add accumulates o into r. Both must share a key, size and logical count.
func (r *Record) Add(o *Record) error {
	if r.Key != o.Key {
		return fmt.Errorf("Add: %s vs %s: %w", r.Key, o.Key, ErrIncompatible)
	}
	if !equalInts(r.Size, o.Size) || r.N != o.N || r.K != o.K || r.D != o.D {
		return fmt.Errorf("Add %s: code parameters differ: %w", r.Key, ErrIncompatible)
	}
	if len(r.LogicalErrors) != len(o.LogicalErrors) {
		return fmt.Errorf("Add %s: %d vs %d logical counts: %w",
			r.Key, len(r.LogicalErrors), len(o.LogicalErrors), ErrIncompatible)
	}
	r.Trials += o.Trials
	r.Failures += o.Failures
	r.Cycles += o.Cycles
	r.SweepLimits += o.SweepLimits
	r.WallTime += o.WallTime
	for i, c := range o.LogicalErrors {
		r.LogicalErrors[i] += c
	}
	return nil
}

// Clone returns a deep copy.
func (r *Record) Clone() Record {
	c := *r
	c.Size = append([]int(nil), r.Size...)
	c.LogicalErrors = append([]int64(nil), r.LogicalErrors...)
	return c
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// JSON keys of the record layout.
const (
	keyCode          = "code"
	keyErrorModel    = "error_model"
	keyDecoder       = "decoder"
	keyProbability   = "probability"
	keySize          = "size"
	keyN             = "n"
	keyK             = "k"
	keyD             = "d"
	keyTrials        = "n_trials"
	keyFailures      = "n_fail"
	keyLogical       = "n_logical"
	keyCycles        = "n_cycle"
	keySweepLimits   = "n_sweep_limit"
	keyWallTime      = "wall_time"
	keyEffectiveRate = "effective_error"
)

// MarshalJSONObject implements gojay.MarshalerJSONObject. wall_time is
// written in seconds; effective_error is derived and ignored on decode.
func (r *Record) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey(keyCode, r.Code)
	enc.StringKey(keyErrorModel, r.ErrorModel)
	enc.StringKey(keyDecoder, r.Decoder)
	enc.Float64Key(keyProbability, r.Probability)
	enc.ArrayKey(keySize, intArray(r.Size))
	enc.IntKey(keyN, r.N)
	enc.IntKey(keyK, r.K)
	enc.IntKey(keyD, r.D)
	enc.Int64Key(keyTrials, r.Trials)
	enc.Int64Key(keyFailures, r.Failures)
	enc.ArrayKey(keyLogical, int64Array(r.LogicalErrors))
	enc.Int64Key(keyCycles, r.Cycles)
	enc.Int64Key(keySweepLimits, r.SweepLimits)
	enc.Float64Key(keyWallTime, r.WallTime.Seconds())
	enc.Float64Key(keyEffectiveRate, r.ErrorRate())
}

// IsNil implements gojay.MarshalerJSONObject.
func (r *Record) IsNil() bool { return r == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (r *Record) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case keyCode:
		return dec.String(&r.Code)
	case keyErrorModel:
		return dec.String(&r.ErrorModel)
	case keyDecoder:
		return dec.String(&r.Decoder)
	case keyProbability:
		return dec.Float64(&r.Probability)
	case keySize:
		a := intArray(nil)
		if err := dec.Array(&a); err != nil {
			return err
		}
		r.Size = a
	case keyN:
		return dec.Int(&r.N)
	case keyK:
		return dec.Int(&r.K)
	case keyD:
		return dec.Int(&r.D)
	case keyTrials:
		return dec.Int64(&r.Trials)
	case keyFailures:
		return dec.Int64(&r.Failures)
	case keyLogical:
		a := int64Array(nil)
		if err := dec.Array(&a); err != nil {
			return err
		}
		r.LogicalErrors = a
	case keyCycles:
		return dec.Int64(&r.Cycles)
	case keySweepLimits:
		return dec.Int64(&r.SweepLimits)
	case keyWallTime:
		var s float64
		if err := dec.Float64(&s); err != nil {
			return err
		}
		r.WallTime = time.Duration(s * float64(time.Second))
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject; 0 means read every key.
func (r *Record) NKeys() int { return 0 }

type intArray []int

func (a intArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range a {
		enc.Int(v)
	}
}

func (a intArray) IsNil() bool { return a == nil }

func (a *intArray) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var v int
	if err := dec.Int(&v); err != nil {
		return err
	}
	*a = append(*a, v)
	return nil
}

type int64Array []int64

func (a int64Array) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range a {
		enc.Int64(v)
	}
}

func (a int64Array) IsNil() bool { return a == nil }

func (a *int64Array) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var v int64
	if err := dec.Int64(&v); err != nil {
		return err
	}
	*a = append(*a, v)
	return nil
}
