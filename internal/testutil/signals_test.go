package testutil

import (
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestConstantFrame(t *testing.T) {
	f := ConstantFrame(100, 3, 4)
	if f.Dim(0) != 3 || f.Dim(1) != 4 {
		t.Fatalf("shape = %v, want [3 4]", f.Shape())
	}
	for i, v := range f.Data() {
		if v != 100 {
			t.Fatalf("pixel %d = %v, want 100", i, v)
		}
	}
}

func TestNoisyFrame(t *testing.T) {
	f := NoisyFrame(7, 1000, 5, 8, 8)
	RequireFinite(t, f.Data())
	for i, v := range f.Data() {
		if v < 995 || v >= 1005 {
			t.Fatalf("pixel %d = %v outside level±amplitude", i, v)
		}
	}
}

func TestGradientFrame(t *testing.T) {
	f := GradientFrame(10, 2, 3)
	if got := f.At(1, 2); got != 15 {
		t.Fatalf("At(1,2) = %v, want 15", got)
	}
}
