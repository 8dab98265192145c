package svf

import (
	"math"

	"github.com/cwbudde/algo-svf/internal/floatmath"
)

// Float is the set of sample types the filter families are instantiated
// over.
type Float = floatmath.Float

// Coefficients1 holds the resolved recurrence constants for a one-pole
// TPT state-variable filter.
//
// A is the linear shelf amplitude (1 for non-shelving archetypes), G the
// prewarped normalized cutoff tan(pi*f0/fs), A1 the feedback coefficient
// from the zero-delay-feedback solve, and M0/M1 the output mix selecting
// the archetype response. A Coefficients1 is an immutable value: behavior
// changes by replacing the set held by a [Filter1], not by mutating it.
type Coefficients1[T Float] struct {
	A  T // linear amplitude
	G  T // prewarped cutoff
	A1 T // feedback
	M0 T // output mix: input tap
	M1 T // output mix: integrator tap

	SampleRate T
}

// prewarp maps a cutoff in Hz to the normalized TPT integrator gain
// g = tan(pi*f0/fs). The cutoff is clamped to Nyquist first.
func prewarp[T Float](cutoffHz, sampleRate T) T {
	f0 := min(cutoffHz, sampleRate/2)
	return floatmath.Tan(T(math.Pi) * f0 / sampleRate)
}

// Lowpass1 designs a one-pole lowpass with the given cutoff (Hz).
func Lowpass1[T Float](cutoffHz, sampleRate T) Coefficients1[T] {
	g := prewarp(cutoffHz, sampleRate)

	return Coefficients1[T]{
		A:          1,
		G:          g,
		A1:         g / (1 + g),
		M0:         0,
		M1:         1,
		SampleRate: sampleRate,
	}
}

// Highpass1 designs a one-pole highpass with the given cutoff (Hz).
func Highpass1[T Float](cutoffHz, sampleRate T) Coefficients1[T] {
	g := prewarp(cutoffHz, sampleRate)

	return Coefficients1[T]{
		A:          1,
		G:          g,
		A1:         g / (1 + g),
		M0:         1,
		M1:         -1,
		SampleRate: sampleRate,
	}
}

// Allpass1 designs a one-pole allpass with the given corner frequency (Hz).
// Magnitude is unity everywhere; only phase varies.
func Allpass1[T Float](cutoffHz, sampleRate T) Coefficients1[T] {
	g := prewarp(cutoffHz, sampleRate)

	return Coefficients1[T]{
		A:          1,
		G:          g,
		A1:         g / (1 + g),
		M0:         1,
		M1:         -2,
		SampleRate: sampleRate,
	}
}

// LowShelf1 designs a one-pole low shelf with gain in dB below the corner.
func LowShelf1[T Float](cutoffHz, gainDB, sampleRate T) Coefficients1[T] {
	a := floatmath.DBToLinear(gainDB)
	g := prewarp(cutoffHz, sampleRate) / floatmath.Sqrt(a)

	return Coefficients1[T]{
		A:          a,
		G:          g,
		A1:         g / (1 + g),
		M0:         1,
		M1:         a - 1,
		SampleRate: sampleRate,
	}
}

// HighShelf1 designs a one-pole high shelf with gain in dB above the corner.
func HighShelf1[T Float](cutoffHz, gainDB, sampleRate T) Coefficients1[T] {
	a := floatmath.DBToLinear(gainDB)
	g := prewarp(cutoffHz, sampleRate) * floatmath.Sqrt(a)

	return Coefficients1[T]{
		A:          a,
		G:          g,
		A1:         g / (1 + g),
		M0:         a,
		M1:         1 - a,
		SampleRate: sampleRate,
	}
}
