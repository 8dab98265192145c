package svf

// Filter1 is a one-pole TPT state-variable filter: a single integrator
// register plus a copy of the active coefficient set.
//
// A Filter1 is meant to be owned by one processing goroutine. ProcessSample
// and Update must not be interleaved from different goroutines without
// external synchronization; the coefficient values themselves are read-only
// and freely shareable.
type Filter1[T Float] struct {
	ic1eq  T
	coeffs Coefficients1[T]
}

// NewFilter1 returns a Filter1 with the given coefficients and zeroed
// integrator state.
func NewFilter1[T Float](c Coefficients1[T]) *Filter1[T] {
	return &Filter1[T]{coeffs: c}
}

// ProcessSample advances the filter by exactly one sample and returns the
// output. Samples must be fed in stream order.
func (f *Filter1[T]) ProcessSample(x T) T {
	v1 := f.coeffs.A1 * (x - f.ic1eq)
	v2 := v1 + f.ic1eq
	f.ic1eq = v2 + v1

	return f.coeffs.M0*x + f.coeffs.M1*v2
}

// Update replaces the active coefficient set. The integrator register is
// left untouched, so swapping coefficients mid-stream yields a continuous
// transition instead of a click.
func (f *Filter1[T]) Update(c Coefficients1[T]) {
	f.coeffs = c
}

// Coefficients returns the active coefficient set.
func (f *Filter1[T]) Coefficients() Coefficients1[T] {
	return f.coeffs
}

// Reset clears the integrator register to zero.
func (f *Filter1[T]) Reset() {
	f.ic1eq = 0
}

// State returns the current integrator register.
func (f *Filter1[T]) State() T {
	return f.ic1eq
}

// SetState restores a previously saved integrator register.
func (f *Filter1[T]) SetState(ic1eq T) {
	f.ic1eq = ic1eq
}
