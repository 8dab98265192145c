package testutil

import (
	"math"

	"github.com/cwbudde/algo-svf/internal/floatmath"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// HashNoise generates the fractional-sine pseudo-noise stimulus
//
//	x[n] = fract(sin(n*12.9898) * 43758.5453)
//
// evaluated in T. The float32 and float64 sequences differ substantially:
// the sine argument rounds differently per precision and the sine is
// evaluated far from zero, so regression values derived from this stimulus
// are per-precision.
func HashNoise[T floatmath.Float](length int) []T {
	out := make([]T, length)
	for i := range out {
		x := T(i) * T(12.9898)
		s := T(math.Sin(float64(x))) * T(43758.5453)
		out[i] = s - floatmath.Trunc(s)
	}
	return out
}
