package spectrum

import (
	"fmt"
	"sort"

	"github.com/cwbudde/zeroflux/core"
)

// Nearest returns the index of the sample whose wavelength is closest to
// wav. Ties go to the lower index.
func (s *Spectrum) Nearest(wav float64) int {
	j := sort.SearchFloat64s(s.wav, wav)
	switch {
	case j == 0:
		return 0
	case j == len(s.wav):
		return j - 1
	case wav-s.wav[j-1] <= s.wav[j]-wav:
		return j - 1
	default:
		return j
	}
}

// Window returns a copy of the samples with indices [c-halfWidth,
// c+halfWidth), where c is the sample nearest center. The range is
// clamped to the spectrum, so a window at an edge holds fewer samples.
func (s *Spectrum) Window(center float64, halfWidth int) (*Spectrum, error) {
	if halfWidth < 1 {
		return nil, fmt.Errorf("spectrum: window half-width %d: %w", halfWidth, core.ErrDomain)
	}

	if !core.IsFinite(center) {
		return nil, fmt.Errorf("spectrum: window center %v: %w", center, core.ErrDomain)
	}

	halfWidth = min(halfWidth, len(s.wav))
	c := s.Nearest(center)
	lo := max(c-halfWidth, 0)
	hi := min(c+halfWidth, len(s.wav))

	return s.slice(lo, hi), nil
}
