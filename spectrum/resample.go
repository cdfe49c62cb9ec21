package spectrum

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/cwbudde/zeroflux/core"
)

// Resample linearly interpolates the spectrum onto grid, which must hold
// at least two positive, strictly increasing wavelengths. Grid points outside the spectrum take
// the edge sample's values. Errors are propagated as
// sqrt((1-t)²σ₀² + t²σ₁²).
func (s *Spectrum) Resample(grid []float64) (*Spectrum, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("spectrum: resampling grid has %d points, need at least 2: %w", len(grid), core.ErrEmptyInput)
	}

	if err := checkGrid(grid); err != nil {
		return nil, err
	}

	if len(s.wav) < 2 {
		return nil, fmt.Errorf("spectrum: cannot interpolate %d sample: %w", len(s.wav), core.ErrEmptyInput)
	}

	out := &Spectrum{
		wav:      slices.Clone(grid),
		flux:     make([]float64, len(grid)),
		frame:    s.frame,
		redshift: s.redshift,
	}

	if s.err != nil {
		out.err = make([]float64, len(grid))
	}

	last := len(s.wav) - 1

	for i, q := range grid {
		q = core.Clamp(q, s.wav[0], s.wav[last])

		j1 := max(sort.SearchFloat64s(s.wav, q), 1)
		j0 := j1 - 1
		t := (q - s.wav[j0]) / (s.wav[j1] - s.wav[j0])

		out.flux[i] = s.flux[j0] + t*(s.flux[j1]-s.flux[j0])

		if s.err != nil {
			a := (1 - t) * s.err[j0]
			b := t * s.err[j1]
			out.err[i] = math.Sqrt(a*a + b*b)
		}
	}

	return out, nil
}

// Smooth averages the flux over a band of constant resolving power
// R = λ/Δλ around every sample, so the band is wider at longer
// wavelengths. Errors of the averaged samples add in quadrature.
func (s *Spectrum) Smooth(resolvingPower float64) (*Spectrum, error) {
	if !(resolvingPower > 0) || math.IsInf(resolvingPower, 1) {
		return nil, fmt.Errorf("spectrum: resolving power %v: %w", resolvingPower, core.ErrDomain)
	}

	out := s.Clone()
	half := 1 / (2 * resolvingPower)

	for i, w := range s.wav {
		lo := w * (1 - half)
		hi := w * (1 + half)

		i0 := sort.Search(len(s.wav), func(k int) bool { return s.wav[k] >= lo })
		i1 := sort.Search(len(s.wav), func(k int) bool { return s.wav[k] > hi })

		if i0 >= i1 {
			continue
		}

		n := float64(i1 - i0)

		sum := 0.0
		for _, f := range s.flux[i0:i1] {
			sum += f
		}

		out.flux[i] = sum / n

		if s.err != nil {
			sq := 0.0
			for _, e := range s.err[i0:i1] {
				sq += e * e
			}

			out.err[i] = math.Sqrt(sq) / n
		}
	}

	return out, nil
}
