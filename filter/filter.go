// SPDX-License-Identifier: EPL-2.0

// Package filter declares the interface between the decoding front-end and
// the downstream IIR filter implementations. The numeric design of the
// filters lives with their implementations; the front-end only initializes,
// runs and closes them through this capability.
package filter

// Type selects the frequency response of a filter.
type Type int

const (
	Lowpass Type = iota
	Highpass
	Bandpass
	Bandstop
	Allpass
)

// ID selects a filter implementation.
type ID int

const (
	BiquadI ID = iota
	BiquadII
	ButterworthI
	ButterworthII
	OnePole
)

// Config carries the parameters a filter is initialized with.
type Config struct {
	Type       Type
	Cascaded   bool
	Cutoff     float64
	Cutoff2    float64 // upper cutoff for band filters
	SampleRate float64
	Taps       int
}

// Filter processes blocks of float64 samples in place of the classic
// init/run/close triple. Run filters n samples from in into out; the two
// slices must not alias unless the implementation documents otherwise.
type Filter interface {
	Run(out, in []float64, n int) error
	Close() error
}

// New constructs a filter implementation for the given id.
type New func(id ID, cfg Config) (Filter, error)
