package svf

// Filter2 is a two-pole TPT state-variable filter: two integrator
// registers plus a copy of the active coefficient set.
//
// A Filter2 is meant to be owned by one processing goroutine. ProcessSample
// and Update must not be interleaved from different goroutines without
// external synchronization; the coefficient values themselves are read-only
// and freely shareable.
type Filter2[T Float] struct {
	ic1eq  T
	ic2eq  T
	coeffs Coefficients2[T]
}

// NewFilter2 returns a Filter2 with the given coefficients and zeroed
// integrator state.
func NewFilter2[T Float](c Coefficients2[T]) *Filter2[T] {
	return &Filter2[T]{coeffs: c}
}

// ProcessSample advances the filter by exactly one sample and returns the
// output. Samples must be fed in stream order.
func (f *Filter2[T]) ProcessSample(x T) T {
	v3 := x - f.ic2eq
	v1 := f.coeffs.A1*f.ic1eq + f.coeffs.A2*v3
	v2 := f.ic2eq + f.coeffs.A2*f.ic1eq + f.coeffs.A3*v3
	f.ic1eq = 2*v1 - f.ic1eq
	f.ic2eq = 2*v2 - f.ic2eq

	return f.coeffs.M0*x + f.coeffs.M1*v1 + f.coeffs.M2*v2
}

// Update replaces the active coefficient set. The integrator registers are
// left untouched, so swapping coefficients mid-stream yields a continuous
// transition instead of a click.
func (f *Filter2[T]) Update(c Coefficients2[T]) {
	f.coeffs = c
}

// Coefficients returns the active coefficient set.
func (f *Filter2[T]) Coefficients() Coefficients2[T] {
	return f.coeffs
}

// Reset clears both integrator registers to zero.
func (f *Filter2[T]) Reset() {
	f.ic1eq = 0
	f.ic2eq = 0
}

// State returns the current integrator registers [ic1eq, ic2eq].
func (f *Filter2[T]) State() [2]T {
	return [2]T{f.ic1eq, f.ic2eq}
}

// SetState restores previously saved integrator registers.
func (f *Filter2[T]) SetState(state [2]T) {
	f.ic1eq = state[0]
	f.ic2eq = state[1]
}
