// Package flux converts flux densities between Jansky, AB magnitudes and
// maggies.
//
// The AB system is anchored at 3631 Jy:
//
//	m_AB = -2.5 log10(f / 3631 Jy)   (≈ -2.5 log10(f / Jy) + 8.90)
//	f    = 3631 Jy * 10^(-0.4 m_AB)
//	1 maggie = 3631 Jy
//
// Plain float64 arguments are taken to be in Jansky. Values that carry a
// unit are expressed as a [Value], a tagged union that the conversions
// pattern-match on; an unknown tag fails with core.ErrUnsupportedUnit.
//
// # Usage
//
//	mag, err := flux.JyToABMag(1) // 8.90
//	v := flux.Value{Magnitude: 250, Unit: flux.MicroJansky}
//	mag, err = v.ABMag()
package flux
