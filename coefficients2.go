package svf

import (
	"github.com/cwbudde/algo-svf/internal/floatmath"
)

// Coefficients2 holds the resolved recurrence constants for a two-pole
// TPT state-variable filter.
//
// A is the linear amplitude derived from the dB gain (1 for archetypes
// without gain), G the prewarped normalized cutoff, G2 its square, K the
// damping 1/Q (1/(Q*A) for the peaking archetype), A1..A3 the feedback
// coefficients from the zero-delay-feedback solve and M0..M2 the output mix
// selecting the archetype response. A Coefficients2 is an immutable value.
type Coefficients2[T Float] struct {
	A  T // linear amplitude
	G  T // prewarped cutoff
	G2 T // G*G
	K  T // damping
	A1 T // feedback
	A2 T
	A3 T
	M0 T // output mix: input tap
	M1 T // output mix: bandpass tap
	M2 T // output mix: lowpass tap

	SampleRate T
}

// solveZDF resolves the zero-delay feedback loop for the given integrator
// gain and damping.
func solveZDF[T Float](g, k T) (a1, a2, a3 T) {
	a1 = 1 / (1 + g*(g+k))
	a2 = g * a1
	a3 = g * a2

	return a1, a2, a3
}

// Lowpass2 designs a two-pole lowpass with the given cutoff (Hz) and
// resonance q.
func Lowpass2[T Float](cutoffHz, q, sampleRate T) Coefficients2[T] {
	g := prewarp(cutoffHz, sampleRate)
	k := 1 / q
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: 1, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: 0, M1: 0, M2: 1,
		SampleRate: sampleRate,
	}
}

// Highpass2 designs a two-pole highpass with the given cutoff (Hz) and
// resonance q.
func Highpass2[T Float](cutoffHz, q, sampleRate T) Coefficients2[T] {
	g := prewarp(cutoffHz, sampleRate)
	k := 1 / q
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: 1, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: 1, M1: -k, M2: -1,
		SampleRate: sampleRate,
	}
}

// Bandpass2 designs a two-pole bandpass centered at cutoffHz.
func Bandpass2[T Float](cutoffHz, q, sampleRate T) Coefficients2[T] {
	g := prewarp(cutoffHz, sampleRate)
	k := 1 / q
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: 1, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: 0, M1: 1, M2: 0,
		SampleRate: sampleRate,
	}
}

// Notch2 designs a two-pole notch centered at cutoffHz.
func Notch2[T Float](cutoffHz, q, sampleRate T) Coefficients2[T] {
	g := prewarp(cutoffHz, sampleRate)
	k := 1 / q
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: 1, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: 1, M1: -k, M2: 0,
		SampleRate: sampleRate,
	}
}

// Allpass2 designs a two-pole allpass centered at cutoffHz. Magnitude is
// unity everywhere; only phase varies.
func Allpass2[T Float](cutoffHz, q, sampleRate T) Coefficients2[T] {
	g := prewarp(cutoffHz, sampleRate)
	k := 1 / q
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: 1, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: 1, M1: -2 * k, M2: 0,
		SampleRate: sampleRate,
	}
}

// LowShelf2 designs a two-pole low shelf with gain in dB below the corner.
// The per-section amplitude uses the 10^(dB/40) convention.
func LowShelf2[T Float](cutoffHz, gainDB, q, sampleRate T) Coefficients2[T] {
	a := floatmath.Pow10(gainDB / 40)
	g := prewarp(cutoffHz, sampleRate) / floatmath.Sqrt(a)
	k := 1 / q
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: a, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: 1, M1: k * (a - 1), M2: a*a - 1,
		SampleRate: sampleRate,
	}
}

// HighShelf2 designs a two-pole high shelf with gain in dB above the
// corner. The per-section amplitude uses the 10^(dB/40) convention.
func HighShelf2[T Float](cutoffHz, gainDB, q, sampleRate T) Coefficients2[T] {
	a := floatmath.Pow10(gainDB / 40)
	g := prewarp(cutoffHz, sampleRate) * floatmath.Sqrt(a)
	k := 1 / q
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: a, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: a * a, M1: k * (1 - a) * a, M2: 1 - a*a,
		SampleRate: sampleRate,
	}
}

// Peak2 designs a two-pole peaking (bell) EQ centered at cutoffHz with gain
// in dB. The damping is 1/(q*a), which keeps boost and cut symmetric.
func Peak2[T Float](cutoffHz, gainDB, q, sampleRate T) Coefficients2[T] {
	a := floatmath.Pow10(gainDB / 40)
	g := prewarp(cutoffHz, sampleRate)
	k := 1 / (q * a)
	a1, a2, a3 := solveZDF(g, k)

	return Coefficients2[T]{
		A: a, G: g, G2: g * g, K: k,
		A1: a1, A2: a2, A3: a3,
		M0: 1, M1: k * (a*a - 1), M2: 0,
		SampleRate: sampleRate,
	}
}
