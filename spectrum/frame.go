package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/zeroflux/core"
)

// Frame is the reference frame of a spectrum's wavelengths.
type Frame int

const (
	// Observed wavelengths are as measured at the telescope.
	Observed Frame = iota
	// Rest wavelengths are as emitted by the source.
	Rest
)

func (f Frame) String() string {
	switch f {
	case Observed:
		return "observed"
	case Rest:
		return "rest"
	default:
		return fmt.Sprintf("Frame(%d)", int(f))
	}
}

func checkRedshift(z float64) error {
	if !(z > -1) || math.IsInf(z, 1) {
		return fmt.Errorf("spectrum: redshift %v: %w", z, core.ErrDomain)
	}

	return nil
}

// Shift moves the wavelengths to the other frame using redshift z:
// observed wavelengths become λ/(1+z) and rest wavelengths λ(1+z). The
// spectrum's redshift is set to z.
func (s *Spectrum) Shift(z float64) error {
	if err := checkRedshift(z); err != nil {
		return err
	}

	factor := 1 + z
	switch s.frame {
	case Observed:
		vecmath.ScaleBlock(s.wav, s.wav, 1/factor)
		s.frame = Rest
	case Rest:
		vecmath.ScaleBlock(s.wav, s.wav, factor)
		s.frame = Observed
	}

	s.redshift = z

	return nil
}

// ToRest shifts an observed spectrum to its rest frame using its own
// redshift. It does nothing if the spectrum is already in the rest frame.
func (s *Spectrum) ToRest() error {
	if s.frame == Rest {
		return nil
	}

	return s.Shift(s.redshift)
}

// ToObserved is the counterpart of ToRest.
func (s *Spectrum) ToObserved() error {
	if s.frame == Observed {
		return nil
	}

	return s.Shift(s.redshift)
}
