package snr

import (
	"fmt"
	"math"

	"github.com/cwbudde/zeroflux/core"
)

// Rate returns the SNR of a source observed for t seconds, given source
// and sky count rates, the aperture and background pixel counts, and the
// optional dark rate and read noise.
func Rate(t, source, sky float64, npix, nsky int, opts ...Option) (float64, error) {
	cfg := ApplyOptions(opts...)
	if !(t > 0) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("snr: exposure time %v: %w", t, core.ErrDomain)
	}

	if err := validate(source, sky, cfg.Dark, cfg.ReadNoise, npix, nsky); err != nil {
		return 0, err
	}

	return ccdEquation(source*t, sky*t, cfg.Dark*t, cfg.ReadNoise, apertureFactor(npix, nsky))
}

// Counts returns the SNR given total source and sky counts.
func Counts(source, sky float64, npix, nsky int, opts ...Option) (float64, error) {
	cfg := ApplyOptions(opts...)
	if err := validate(source, sky, cfg.Dark, cfg.ReadNoise, npix, nsky); err != nil {
		return 0, err
	}

	return ccdEquation(source, sky, cfg.Dark, cfg.ReadNoise, apertureFactor(npix, nsky))
}

// ccdEquation evaluates S / sqrt(S + k (B + D + R²)) on validated totals.
func ccdEquation(s, b, d, rn, k float64) (float64, error) {
	variance := s + k*(b+d+rn*rn)
	if variance == 0 {
		return 0, fmt.Errorf("snr: zero total noise: %w", core.ErrDivisionByZero)
	}

	return s / math.Sqrt(variance), nil
}

func validate(source, sky, dark, rn float64, npix, nsky int) error {
	if nsky == 0 {
		return fmt.Errorf("snr: background pixel count is zero: %w", core.ErrDivisionByZero)
	}

	if nsky < 0 || npix <= 0 {
		return fmt.Errorf("snr: pixel counts n_ap=%d n_bg=%d: %w", npix, nsky, core.ErrDomain)
	}

	for _, p := range []struct {
		name string
		v    float64
	}{{"source", source}, {"sky", sky}, {"dark", dark}, {"read noise", rn}} {
		if !(p.v >= 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("snr: %s %v: %w", p.name, p.v, core.ErrDomain)
		}
	}

	return nil
}

// apertureFactor is n_ap (1 + n_ap/n_bg).
func apertureFactor(npix, nsky int) float64 {
	n := float64(npix)
	return n * (1 + n/float64(nsky))
}

// ExposureForSNR returns the exposure time in seconds at which a source of
// the given rate reaches the target SNR. It solves the rate form for t:
//
//	S² t² - target² (S + k(B + D)) t - target² k R² = 0,  k = n_ap (1 + n_ap/n_bg)
func ExposureForSNR(target, source, sky float64, npix, nsky int, opts ...Option) (float64, error) {
	cfg := ApplyOptions(opts...)
	if err := validate(source, sky, cfg.Dark, cfg.ReadNoise, npix, nsky); err != nil {
		return 0, err
	}

	if !(target > 0) || math.IsInf(target, 0) {
		return 0, fmt.Errorf("snr: target %v: %w", target, core.ErrDomain)
	}

	if source == 0 {
		return 0, fmt.Errorf("snr: zero source rate never reaches SNR %v: %w", target, core.ErrDomain)
	}

	k := apertureFactor(npix, nsky)
	t2 := target * target
	a := source * source
	b := t2 * (source + k*(sky+cfg.Dark))
	c := t2 * k * cfg.ReadNoise * cfg.ReadNoise

	return (b + math.Sqrt(b*b+4*a*c)) / (2 * a), nil
}
