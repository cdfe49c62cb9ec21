package flux

import (
	"fmt"

	"github.com/cwbudde/zeroflux/core"
)

// Unit tags a flux value.
type Unit int

// Supported units. Unitless values are taken to be in Jansky.
const (
	Unitless Unit = iota
	Jansky
	MilliJansky
	MicroJansky
	ABMag
	Maggie
)

var unitNames = map[Unit]string{
	Unitless:    "",
	Jansky:      "Jy",
	MilliJansky: "mJy",
	MicroJansky: "uJy",
	ABMag:       "mag(AB)",
	Maggie:      "maggie",
}

// String returns the unit symbol accepted by ParseUnit.
func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}

	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit maps a unit symbol to a Unit. "µJy" is accepted as an alias
// of "uJy" and "AB" as an alias of "mag(AB)".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "µJy":
		return MicroJansky, nil
	case "AB":
		return ABMag, nil
	}

	for u, name := range unitNames {
		if name == s {
			return u, nil
		}
	}

	return 0, fmt.Errorf("flux: unit %q: %w", s, core.ErrUnsupportedUnit)
}

// Value is a flux quantity tagged with its unit.
type Value struct {
	Magnitude float64
	Unit      Unit
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.Unit == Unitless {
		return fmt.Sprintf("%g", v.Magnitude)
	}

	return fmt.Sprintf("%g %s", v.Magnitude, v.Unit)
}

// ToJansky normalizes v to Jansky.
func ToJansky(v Value) (float64, error) {
	switch v.Unit {
	case Unitless, Jansky:
		return v.Magnitude, nil
	case MilliJansky:
		return v.Magnitude * 1e-3, nil
	case MicroJansky:
		return v.Magnitude * 1e-6, nil
	case Maggie:
		return MaggieToJy(v.Magnitude), nil
	case ABMag:
		return ABMagToJy(v.Magnitude), nil
	default:
		return 0, fmt.Errorf("flux: convert %v to Jy: %w", v.Unit, core.ErrUnsupportedUnit)
	}
}

// Jansky returns v in Jansky.
func (v Value) Jansky() (float64, error) { return ToJansky(v) }

// ABMag returns v as an AB magnitude. A value already tagged ABMag is
// returned unchanged.
func (v Value) ABMag() (float64, error) {
	if v.Unit == ABMag {
		return v.Magnitude, nil
	}

	jy, err := ToJansky(v)
	if err != nil {
		return 0, err
	}

	return JyToABMag(jy)
}

// Maggie returns v in maggies.
func (v Value) Maggie() (float64, error) {
	if v.Unit == Maggie {
		return v.Magnitude, nil
	}

	jy, err := ToJansky(v)
	if err != nil {
		return 0, err
	}

	return JyToMaggie(jy), nil
}

// Convert re-expresses v in unit to. Converting to Unitless yields Jansky.
func (v Value) Convert(to Unit) (Value, error) {
	var (
		m   float64
		err error
	)

	switch to {
	case Unitless, Jansky:
		m, err = v.Jansky()
	case MilliJansky:
		m, err = v.Jansky()
		m *= 1e3
	case MicroJansky:
		m, err = v.Jansky()
		m *= 1e6
	case ABMag:
		m, err = v.ABMag()
	case Maggie:
		m, err = v.Maggie()
	default:
		err = fmt.Errorf("flux: convert to %v: %w", to, core.ErrUnsupportedUnit)
	}

	if err != nil {
		return Value{}, err
	}

	return Value{Magnitude: m, Unit: to}, nil
}
