package testutil

import (
	"math"
	"testing"
)

func TestHashNoise_Deterministic(t *testing.T) {
	a := HashNoise[float64](256)
	b := HashNoise[float64](256)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestHashNoise_Values(t *testing.T) {
	// sin(0) = 0, so the sequence always starts at zero.
	if x := HashNoise[float64](1)[0]; x != 0 {
		t.Fatalf("x[0] = %v, want 0", x)
	}

	// The fractional part is bounded by (-1, 1) and its sign follows the
	// sine product.
	for i, v := range HashNoise[float64](2048) {
		if v <= -1 || v >= 1 {
			t.Fatalf("index %d: %v out of (-1, 1)", i, v)
		}
	}

	// Spot checks at n=500 for both precisions. The values differ because
	// the stimulus rounds per-precision before the fract.
	if got := HashNoise[float64](501)[500]; math.Abs(got-(-0.3847682324339985)) > 1e-12 {
		t.Errorf("float64 x[500] = %v", got)
	}
	if got := HashNoise[float32](501)[500]; math.Abs(float64(got)-(-0.12890625)) > 1e-6 {
		t.Errorf("float32 x[500] = %v", got)
	}
}

func TestHashNoise_PrecisionsDiverge(t *testing.T) {
	x64 := HashNoise[float64](100)
	x32 := HashNoise[float32](100)

	var diverged int
	for i := range x64 {
		if math.Abs(x64[i]-float64(x32[i])) > 0.01 {
			diverged++
		}
	}
	if diverged == 0 {
		t.Fatal("float32 and float64 stimuli should differ materially")
	}
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 0.5, 48)
	if s[0] != 0 {
		t.Errorf("s[0] = %v, want 0", s[0])
	}
	// Quarter period of a 48-sample cycle hits the amplitude.
	if math.Abs(s[12]-0.5) > 1e-12 {
		t.Errorf("s[12] = %v, want 0.5", s[12])
	}
	RequireFinite(t, s)
}

func TestImpulse(t *testing.T) {
	x := Impulse(8, 3)
	for i, v := range x {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Errorf("x[%d] = %v, want %v", i, v, want)
		}
	}

	// Out-of-range position yields silence.
	for i, v := range Impulse(4, 10) {
		if v != 0 {
			t.Errorf("x[%d] = %v, want 0", i, v)
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	if d != 1 {
		t.Errorf("got %v, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("length mismatch: want error")
	}
}
