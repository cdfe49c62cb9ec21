package snr

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/zeroflux/core"
	"github.com/cwbudde/zeroflux/internal/testutil"
)

func TestRateSliceBroadcast(t *testing.T) {
	times := []float64{1, 100, 400}
	got, err := RateSlice(times, Series{
		Source: []float64{10},
		Sky:    []float64{5},
		NPix:   []int{9},
		NSky:   []int{81},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, len(times))
	for i, tt := range times {
		want[i], _ = Rate(tt, 10, 5, 9, 81)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	// SNR grows as sqrt(t) when sky dominates and there is no read noise.
	if r := got[2] / got[1]; math.Abs(r-2) > 1e-12 {
		t.Fatalf("SNR(400)/SNR(100) = %v, want 2", r)
	}
}

func TestCountsSliceElementWise(t *testing.T) {
	got, err := CountsSlice(Series{
		Source:    []float64{1000, 2000},
		Sky:       []float64{500, 500},
		NPix:      []int{9, 9},
		NSky:      []int{81},
		Dark:      []float64{0, 100},
		ReadNoise: []float64{10},
	})
	if err != nil {
		t.Fatal(err)
	}

	w0, _ := Counts(1000, 500, 9, 81, WithReadNoise(10))
	w1, _ := Counts(2000, 500, 9, 81, WithDark(100), WithReadNoise(10))
	testutil.RequireSliceNearlyEqual(t, got, []float64{w0, w1}, 1e-12)
}

func TestSeriesShapeMismatch(t *testing.T) {
	out, err := CountsSlice(Series{
		Source: []float64{1, 2, 3},
		Sky:    []float64{1, 2},
		NPix:   []int{9},
		NSky:   []int{81},
	})
	if !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
	if out != nil {
		t.Fatalf("expected no partial output, got %v", out)
	}

	if _, err := RateSlice([]float64{1, 2}, Series{
		Source: []float64{1, 2, 3},
		Sky:    []float64{1},
		NPix:   []int{9},
		NSky:   []int{81},
	}); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestSeriesMissingField(t *testing.T) {
	if _, err := CountsSlice(Series{Source: []float64{1}, Sky: []float64{1}, NPix: []int{9}}); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
	if _, err := RateSlice(nil, Series{Source: []float64{1}, Sky: []float64{1}, NPix: []int{9}, NSky: []int{9}}); !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestSeriesBadElementFailsWholeCall(t *testing.T) {
	out, err := CountsSlice(Series{
		Source: []float64{1000, 1000},
		Sky:    []float64{500},
		NPix:   []int{9},
		NSky:   []int{81, 0},
	})
	if !errors.Is(err, core.ErrDivisionByZero) {
		t.Fatalf("got %v, want ErrDivisionByZero", err)
	}
	if out != nil {
		t.Fatalf("expected no partial output, got %v", out)
	}
}
