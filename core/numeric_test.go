package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{2, 1, 0, 1},
		{4000, 3500, 9000, 4000},
		{math.Inf(1), 3500, 9000, 9000},
	}

	for _, tc := range tests {
		if got := Clamp(tc.x, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.x, tc.lo, tc.hi, got, tc.want)
		}
	}

	if !math.IsNaN(Clamp(math.NaN(), 0, 1)) {
		t.Error("Clamp(NaN) should stay NaN")
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(3631e6, 3631e6*(1+1e-10), 1e-9) {
		t.Fatal("expected relative comparison for large values")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon for non-positive eps")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) {
		t.Fatal("1 should be finite")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Fatalf("%v should not be finite", v)
		}
	}
}
