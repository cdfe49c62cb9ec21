package snr

import (
	"fmt"

	"github.com/cwbudde/zeroflux/core"
)

// Series holds element-wise inputs to the CCD equation. Each slice either
// has length 1, in which case it is broadcast, or the common length of the
// series. Dark and ReadNoise may be nil, meaning zero.
type Series struct {
	Source    []float64
	Sky       []float64
	NPix      []int
	NSky      []int
	Dark      []float64
	ReadNoise []float64
}

// RateSlice evaluates Rate element-wise. t follows the same broadcasting
// rule as the fields of s. Any invalid element fails the whole call.
func RateSlice(t []float64, s Series) ([]float64, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("snr: exposure times: %w", core.ErrEmptyInput)
	}

	n, err := s.length(len(t))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		v, err := Rate(pick(t, i), pick(s.Source, i), pick(s.Sky, i), pickInt(s.NPix, i), pickInt(s.NSky, i),
			WithDark(pick(s.Dark, i)), WithReadNoise(pick(s.ReadNoise, i)))
		if err != nil {
			return nil, fmt.Errorf("snr: element %d: %w", i, err)
		}

		out[i] = v
	}

	return out, nil
}

// CountsSlice evaluates Counts element-wise.
func CountsSlice(s Series) ([]float64, error) {
	n, err := s.length()
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		v, err := Counts(pick(s.Source, i), pick(s.Sky, i), pickInt(s.NPix, i), pickInt(s.NSky, i),
			WithDark(pick(s.Dark, i)), WithReadNoise(pick(s.ReadNoise, i)))
		if err != nil {
			return nil, fmt.Errorf("snr: element %d: %w", i, err)
		}

		out[i] = v
	}

	return out, nil
}

// length returns the broadcast length of the series together with any
// extra required lengths.
func (s Series) length(extra ...int) (int, error) {
	required := append([]int{len(s.Source), len(s.Sky), len(s.NPix), len(s.NSky)}, extra...)
	for _, l := range required {
		if l == 0 {
			return 0, fmt.Errorf("snr: missing required series: %w", core.ErrEmptyInput)
		}
	}

	all := append(required, len(s.Dark), len(s.ReadNoise))

	n := 1
	for _, l := range all {
		n = max(n, l)
	}

	for _, l := range all {
		if l != 0 && l != 1 && l != n {
			return 0, fmt.Errorf("snr: series length %d does not broadcast to %d: %w", l, n, core.ErrShapeMismatch)
		}
	}

	return n, nil
}

func pick(x []float64, i int) float64 {
	switch len(x) {
	case 0:
		return 0
	case 1:
		return x[0]
	default:
		return x[i]
	}
}

func pickInt(x []int, i int) int {
	if len(x) == 1 {
		return x[0]
	}

	return x[i]
}
