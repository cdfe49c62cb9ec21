package spectrum

import (
	"github.com/cwbudde/zeroflux/photometry/flux"
)

// FnuJy converts the f_λ flux of every sample to f_ν in Jansky at that
// sample's wavelength.
func (s *Spectrum) FnuJy() ([]float64, error) {
	out := make([]float64, len(s.flux))

	for i, f := range s.flux {
		v, err := flux.FlamToFnu(f, s.wav[i])
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
