package flux

import (
	"fmt"
	"math"

	"github.com/cwbudde/zeroflux/astromath"
	"github.com/cwbudde/zeroflux/core"
)

// ABZeroPointJy is the flux density of an AB magnitude of zero, which is
// also one maggie.
const ABZeroPointJy = 3631.0

// JyToABMag converts a flux density in Jansky to an AB magnitude. The flux
// must be positive.
//
// The offset is taken relative to ABZeroPointJy rather than the rounded
// 8.90 so that ABMagToJy inverts it exactly; 1 Jy maps to 8.90007.
func JyToABMag(fluxJy float64) (float64, error) {
	if !(fluxJy > 0) {
		return 0, fmt.Errorf("flux: AB magnitude of %v Jy: %w", fluxJy, core.ErrDomain)
	}

	return -2.5 * math.Log10(fluxJy/ABZeroPointJy), nil
}

// ABMagToJy converts an AB magnitude to a flux density in Jansky.
func ABMagToJy(mag float64) float64 {
	return ABZeroPointJy * math.Pow(10, -0.4*mag)
}

// JyToMaggie converts a flux density in Jansky to maggies.
func JyToMaggie(fluxJy float64) float64 {
	return fluxJy / ABZeroPointJy
}

// MaggieToJy converts maggies to Jansky.
func MaggieToJy(maggie float64) float64 {
	return maggie * ABZeroPointJy
}

// JyToABMagSlice converts every element of fluxJy. If any element is not
// positive the call fails and no output is returned.
func JyToABMagSlice(fluxJy []float64) ([]float64, error) {
	out := make([]float64, len(fluxJy))
	for i, f := range fluxJy {
		m, err := JyToABMag(f)
		if err != nil {
			return nil, fmt.Errorf("flux: element %d: %w", i, err)
		}

		out[i] = m
	}

	return out, nil
}

// ABMagToJySlice converts every element of mags to Jansky.
func ABMagToJySlice(mags []float64) []float64 {
	out := make([]float64, len(mags))
	for i, m := range mags {
		out[i] = ABMagToJy(m)
	}

	return out
}

// JyToMaggieSlice converts every element of fluxJy to maggies.
func JyToMaggieSlice(fluxJy []float64) []float64 {
	out := make([]float64, len(fluxJy))
	for i, f := range fluxJy {
		out[i] = JyToMaggie(f)
	}

	return out
}

// ValuesToABMag converts a slice of tagged values to AB magnitudes,
// failing on the first unsupported unit or non-positive flux.
func ValuesToABMag(values []Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		m, err := v.ABMag()
		if err != nil {
			return nil, fmt.Errorf("flux: element %d: %w", i, err)
		}

		out[i] = m
	}

	return out, nil
}

// FnuToFlam converts a frequency flux density in Jansky to a wavelength
// flux density in erg s^-1 cm^-2 Å^-1 at the given wavelength in Å:
//
//	f_λ = f_ν c / λ²
func FnuToFlam(fnuJy, wavelengthAngstrom float64) (float64, error) {
	if !(wavelengthAngstrom > 0) {
		return 0, fmt.Errorf("flux: wavelength %v Å: %w", wavelengthAngstrom, core.ErrDomain)
	}

	fnu := fnuJy * astromath.Jansky
	return fnu * astromath.SpeedOfLightAng / (wavelengthAngstrom * wavelengthAngstrom), nil
}

// FlamToFnu is the inverse of FnuToFlam and returns Jansky.
func FlamToFnu(flam, wavelengthAngstrom float64) (float64, error) {
	if !(wavelengthAngstrom > 0) {
		return 0, fmt.Errorf("flux: wavelength %v Å: %w", wavelengthAngstrom, core.ErrDomain)
	}

	fnu := flam * wavelengthAngstrom * wavelengthAngstrom / astromath.SpeedOfLightAng
	return fnu / astromath.Jansky, nil
}
