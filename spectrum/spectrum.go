package spectrum

import (
	"fmt"
	"slices"

	"github.com/cwbudde/zeroflux/core"
)

// dispersionTolerance is the relative spread of wavelength steps still
// treated as a uniform grid.
const dispersionTolerance = 1e-9

// Spectrum is a sampled 1-D spectrum. Methods that shift wavelengths
// modify the receiver; all others leave it untouched.
type Spectrum struct {
	wav      []float64
	flux     []float64
	err      []float64
	frame    Frame
	redshift float64
}

// New copies wav, flux and the optional errs into a Spectrum. wav and
// flux need at least two samples; errs may be nil.
func New(wav, flux, errs []float64, opts ...Option) (*Spectrum, error) {
	cfg := ApplyOptions(opts...)

	if len(wav) < 2 {
		return nil, fmt.Errorf("spectrum: %d samples, need at least 2: %w", len(wav), core.ErrEmptyInput)
	}

	if len(flux) != len(wav) {
		return nil, fmt.Errorf("spectrum: %d flux values for %d wavelengths: %w", len(flux), len(wav), core.ErrShapeMismatch)
	}

	if errs != nil && len(errs) != len(wav) {
		return nil, fmt.Errorf("spectrum: %d errors for %d wavelengths: %w", len(errs), len(wav), core.ErrShapeMismatch)
	}

	if err := checkGrid(wav); err != nil {
		return nil, err
	}

	if err := checkRedshift(cfg.Redshift); err != nil {
		return nil, err
	}

	if cfg.Frame != Observed && cfg.Frame != Rest {
		return nil, fmt.Errorf("spectrum: %v: %w", cfg.Frame, core.ErrDomain)
	}

	return &Spectrum{
		wav:      slices.Clone(wav),
		flux:     slices.Clone(flux),
		err:      slices.Clone(errs),
		frame:    cfg.Frame,
		redshift: cfg.Redshift,
	}, nil
}

// checkGrid requires positive, strictly increasing wavelengths.
func checkGrid(wav []float64) error {
	for i, w := range wav {
		if !(w > 0) || !core.IsFinite(w) {
			return fmt.Errorf("spectrum: wavelength %v at index %d: %w", w, i, core.ErrDomain)
		}

		if i > 0 && !(w > wav[i-1]) {
			return fmt.Errorf("spectrum: wavelengths must be strictly increasing at index %d: %w", i, core.ErrDomain)
		}
	}

	return nil
}

// Len returns the number of samples.
func (s *Spectrum) Len() int { return len(s.wav) }

// Wavelength returns the wavelengths in the current frame. The slice is
// owned by the spectrum.
func (s *Spectrum) Wavelength() []float64 { return s.wav }

// Flux returns the flux values. The slice is owned by the spectrum.
func (s *Spectrum) Flux() []float64 { return s.flux }

// Err returns the flux errors, or nil if the spectrum has none.
func (s *Spectrum) Err() []float64 { return s.err }

// HasErr reports whether flux errors are present.
func (s *Spectrum) HasErr() bool { return s.err != nil }

// Frame returns the frame the wavelengths are currently in.
func (s *Spectrum) Frame() Frame { return s.frame }

// Redshift returns the redshift used by ToRest and ToObserved.
func (s *Spectrum) Redshift() float64 { return s.redshift }

// Dispersion returns the wavelength step per sample and true when the
// grid is uniform. A non-uniform grid, or a single sample, returns
// (0, false).
func (s *Spectrum) Dispersion() (float64, bool) {
	if len(s.wav) < 2 {
		return 0, false
	}

	d0 := s.wav[1] - s.wav[0]
	for i := 2; i < len(s.wav); i++ {
		if !core.NearlyEqual(s.wav[i]-s.wav[i-1], d0, dispersionTolerance) {
			return 0, false
		}
	}

	return d0, true
}

// Clone returns a deep copy.
func (s *Spectrum) Clone() *Spectrum {
	c := *s
	c.wav = slices.Clone(s.wav)
	c.flux = slices.Clone(s.flux)
	c.err = slices.Clone(s.err)

	return &c
}

// String implements fmt.Stringer.
func (s *Spectrum) String() string {
	return fmt.Sprintf("Spectrum{%d samples, %.6g-%.6g Å, %v, z=%g}",
		len(s.wav), s.wav[0], s.wav[len(s.wav)-1], s.frame, s.redshift)
}

// slice returns a copy of samples [lo, hi).
func (s *Spectrum) slice(lo, hi int) *Spectrum {
	out := &Spectrum{
		wav:      slices.Clone(s.wav[lo:hi]),
		flux:     slices.Clone(s.flux[lo:hi]),
		frame:    s.frame,
		redshift: s.redshift,
	}

	if s.err != nil {
		out.err = slices.Clone(s.err[lo:hi])
	}

	return out
}
