// Package bode evaluates filter frequency responses over frequency grids
// for plotting and verification.
//
// [Sweep] samples any [Responder] (the svf coefficient types, or a
// caller-composed [Chain]) on a frequency grid and returns linear
// magnitude, dB magnitude and phase arrays. [FromImpulse] estimates a
// response from a measured impulse response via FFT, which is useful for
// cross-checking the closed-form evaluators against the time-domain
// recurrence:
//
//	freqs, _ := bode.LogSpace(20, 20000, 256)
//	res, _ := bode.Sweep(svf.Peak2[float64](1000, 6, 1, 48000), freqs, 48000)
//	// res.MagnitudeDB is ready for plotting against res.Frequencies
package bode
