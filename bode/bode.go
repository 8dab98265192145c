package bode

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-svf/internal/floatmath"
)

// Errors returned by analysis functions.
var (
	ErrInvalidSampleRate = errors.New("bode: sample rate must be positive")
	ErrInvalidRange      = errors.New("bode: frequency range must be positive and ascending")
	ErrEmptyImpulse      = errors.New("bode: impulse response is empty")
)

// Responder evaluates a complex frequency response at a single frequency.
// Both svf coefficient types satisfy it.
type Responder interface {
	Response(freqHz, sampleRate float64) complex128
}

// Chain models filters run in series: its response is the complex product
// of the element responses.
type Chain []Responder

// Response returns the product of the element responses.
func (c Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for _, r := range c {
		h *= r.Response(freqHz, sampleRate)
	}
	return h
}

// LogSpace returns n logarithmically spaced frequencies from startHz to
// endHz inclusive.
func LogSpace(startHz, endHz float64, n int) ([]float64, error) {
	if startHz <= 0 || endHz <= startHz {
		return nil, ErrInvalidRange
	}
	if n < 2 {
		return nil, fmt.Errorf("bode: need at least 2 grid points: %d", n)
	}

	out := make([]float64, n)
	span := math.Log(endHz / startHz)
	for i := range out {
		out[i] = startHz * math.Exp(span*float64(i)/float64(n-1))
	}
	out[n-1] = endHz

	return out, nil
}

// Result holds a frequency response sampled on a grid.
type Result struct {
	Frequencies []float64 // Hz, as passed to Sweep
	Magnitude   []float64 // |H(f)|, linear
	MagnitudeDB []float64 // 20*log10(|H(f)|)
	PhaseDeg    []float64 // phase in degrees, per point in (-180, 180]
}

// Sweep evaluates r at every frequency in freqs.
//
// Magnitudes are computed from split real/imaginary parts, using
// SIMD-accelerated kernels where available.
func Sweep(r Responder, freqs []float64, sampleRate float64) (*Result, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	n := len(freqs)
	res := &Result{
		Frequencies: freqs,
		Magnitude:   make([]float64, n),
		MagnitudeDB: make([]float64, n),
		PhaseDeg:    make([]float64, n),
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, f := range freqs {
		h := r.Response(f, sampleRate)
		re[i] = real(h)
		im[i] = imag(h)
		res.PhaseDeg[i] = cmplx.Phase(h) * 180 / math.Pi
	}

	vecmath.Magnitude(res.Magnitude, re, im)
	for i, m := range res.Magnitude {
		res.MagnitudeDB[i] = floatmath.LinearToDB(m)
	}

	return res, nil
}

// Spectrum holds the single-sided response estimated from an impulse
// response: bins 0..fftSize/2 at a spacing of sampleRate/fftSize.
type Spectrum struct {
	Frequencies []float64
	Bins        []complex128
}

// FromImpulse estimates the frequency response from an impulse response by
// zero-padding to the next power of two and taking the FFT. The impulse
// response must have decayed within the given window for the estimate to
// match the true response.
func FromImpulse(ir []float64, sampleRate float64) (*Spectrum, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyImpulse
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	fftSize := nextPowerOf2(len(ir))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("bode: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("bode: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	s := &Spectrum{
		Frequencies: make([]float64, half),
		Bins:        out[:half],
	}
	for i := range s.Frequencies {
		s.Frequencies[i] = sampleRate * float64(i) / float64(fftSize)
	}

	return s, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
