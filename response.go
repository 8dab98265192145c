package svf

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-svf/internal/floatmath"
)

// zSample returns z = e^(-j*2*pi*f/fs), the unit-circle sample the
// closed-form evaluators substitute for the unit delay.
func zSample(freqHz, sampleRate float64) complex128 {
	s, c := math.Sincos(-2 * math.Pi * freqHz / sampleRate)
	return complex(c, s)
}

// Response computes the complex frequency response H(f) at the given
// frequency (Hz) and sample rate (Hz) by direct evaluation of the transfer
// function; the time-domain recurrence is never run. The modulus of the
// result is the linear gain, the argument the phase. Cascaded filters
// combine by complex multiplication of their responses.
//
// Evaluation is carried out in float64 for both instantiations.
func (c Coefficients1[T]) Response(freqHz, sampleRate float64) complex128 {
	z := zSample(freqHz, sampleRate)
	g := float64(c.G)

	den := complex(g, 0) + z*complex(g-1, 0) + 1

	return complex(float64(c.M0), 0) + complex(float64(c.M1)*g, 0)*(z+1)/den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients1[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return floatmath.LinearToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi].
func (c Coefficients1[T]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response computes the complex frequency response H(f) at the given
// frequency (Hz) and sample rate (Hz) by direct evaluation of the transfer
// function; the time-domain recurrence is never run. The modulus of the
// result is the linear gain, the argument the phase. Cascaded filters
// combine by complex multiplication of their responses.
//
// Evaluation is carried out in float64 for both instantiations.
func (c Coefficients2[T]) Response(freqHz, sampleRate float64) complex128 {
	z := zSample(freqHz, sampleRate)
	z2 := z * z
	g := float64(c.G)
	g2 := float64(c.G2)
	gk := g * float64(c.K)

	den := complex(g2+gk+1, 0) + complex(2*(g2-1), 0)*z + complex(g2-gk+1, 0)*z2
	num := complex(float64(c.M1)*g, 0)*(1-z2) + complex(float64(c.M2)*g2, 0)*(1+2*z+z2)

	return complex(float64(c.M0), 0) + num/den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients2[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return floatmath.LinearToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi].
func (c Coefficients2[T]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// ImpulseResponse computes n samples of the impulse response h[n] by
// feeding an impulse through the filter. The integrator state is saved and
// restored, so the call does not disturb a running stream.
func (f *Filter1[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	saved := f.State()
	f.Reset()

	ir := make([]T, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	f.SetState(saved)

	return ir
}

// ImpulseResponse computes n samples of the impulse response h[n] by
// feeding an impulse through the filter. The integrator state is saved and
// restored, so the call does not disturb a running stream.
func (f *Filter2[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}

	saved := f.State()
	f.Reset()

	ir := make([]T, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	f.SetState(saved)

	return ir
}
