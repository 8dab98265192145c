// Package floatmath provides the generic float kernels shared by the
// filter designers and response evaluators.
//
// All transcendental functions are evaluated in float64 and rounded to the
// instantiated type; the basic arithmetic of the callers stays in the
// instantiated type. The pow10 and sqrt kernels have a fast approximate
// variant selected by the "fastmath" build tag.
package floatmath

import "math"

// Float is the set of sample types the filter families are instantiated
// over.
type Float interface {
	~float32 | ~float64
}

// Tan returns tan(x), evaluated in float64 and rounded to T.
// There is no approximate variant: algo-approx provides no tangent.
func Tan[T Float](x T) T {
	return T(math.Tan(float64(x)))
}

// Sqrt returns the square root of x rounded to T.
func Sqrt[T Float](x T) T {
	return T(sqrt(float64(x)))
}

// Pow10 returns 10^x rounded to T.
func Pow10[T Float](x T) T {
	return T(pow10(float64(x)))
}

// Trunc returns the integer part of x (rounding toward zero).
func Trunc[T Float](x T) T {
	return T(math.Trunc(float64(x)))
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear[T Float](db T) T {
	return Pow10(db / 20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB[T Float](linear T) T {
	if linear < 0 {
		return T(math.NaN())
	}

	if linear == 0 {
		return T(math.Inf(-1))
	}

	return 20 * T(math.Log10(float64(linear)))
}
