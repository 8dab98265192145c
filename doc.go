// Package svf implements first- and second-order digital filters in the
// topology-preserving-transform state-variable form (TPT SVF).
//
// Coefficient designers (Lowpass1, HighShelf2, Peak2, ...) map a filter
// archetype and its tuning parameters to an immutable coefficient value.
// [Filter1] and [Filter2] apply a coefficient set to a sample stream one
// sample at a time with O(1) work per sample and no allocation after
// construction; Update hot-swaps coefficients without resetting the
// integrator registers, so parameter changes glide instead of clicking.
// The coefficient types also evaluate their own z-domain frequency response
// in closed form, without running the recurrence; grid evaluation for
// plotting lives in the bode sub-package.
//
// The package is generic over the sample type (float32 or float64). The two
// instantiations are structurally identical but numerically independent and
// produce precision-specific results.
//
// Out-of-range numeric inputs are not validated: the cutoff is clamped to
// Nyquist at design time and everything else follows IEEE floating-point
// semantics (Q = 0 propagates non-finite coefficients). Validation, where
// wanted, belongs to the calling layer, not the per-sample path.
package svf
