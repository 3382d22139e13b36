package sequence

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	for _, e := range []Ease{EaseLinear, EaseSmooth, EaseCubic, "bogus", ""} {
		if v := e.Apply(0); v != 0 {
			t.Fatalf("%q at 0: got %v", e, v)
		}
		if v := e.Apply(1); v != 1 {
			t.Fatalf("%q at 1: got %v", e, v)
		}
	}
}

func TestEaseMidpoints(t *testing.T) {
	if v := EaseLinear.Apply(0.25); v != 0.25 {
		t.Fatalf("linear at 0.25: got %v", v)
	}
	// 3x^2 - 2x^3 and 6x^5 - 15x^4 + 10x^3 both cross 0.5 at the middle.
	if v := EaseSmooth.Apply(0.5); math.Abs(v-0.5) > 1e-12 {
		t.Fatalf("smooth at 0.5: got %v", v)
	}
	if v := EaseCubic.Apply(0.5); math.Abs(v-0.5) > 1e-12 {
		t.Fatalf("cubic at 0.5: got %v", v)
	}
	// Slow start relative to linear.
	if v := EaseSmooth.Apply(0.1); v >= 0.1 {
		t.Fatalf("smooth at 0.1 should undershoot linear, got %v", v)
	}
	if v := EaseCubic.Apply(0.1); v >= 0.1 {
		t.Fatalf("cubic at 0.1 should undershoot linear, got %v", v)
	}
}
