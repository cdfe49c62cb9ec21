package astromath

import (
	"fmt"
	"math"

	"github.com/cwbudde/zeroflux/core"
)

// AngleUnit identifies an angular unit.
type AngleUnit int

// Supported angular units.
const (
	Radian AngleUnit = iota
	Degree
	Arcminute
	Arcsecond
)

var angleNames = map[AngleUnit]string{
	Radian:    "rad",
	Degree:    "deg",
	Arcminute: "arcmin",
	Arcsecond: "arcsec",
}

// String returns the unit name used by ParseAngleUnit.
func (u AngleUnit) String() string {
	if s, ok := angleNames[u]; ok {
		return s
	}

	return fmt.Sprintf("AngleUnit(%d)", int(u))
}

// ParseAngleUnit maps "rad", "deg", "arcmin" or "arcsec" to a unit.
func ParseAngleUnit(s string) (AngleUnit, error) {
	for u, name := range angleNames {
		if name == s {
			return u, nil
		}
	}

	return 0, fmt.Errorf("astromath: angle unit %q: %w", s, core.ErrUnsupportedUnit)
}

// Radians returns the size of one u in radians.
func (u AngleUnit) Radians() (float64, error) {
	switch u {
	case Radian:
		return 1, nil
	case Degree:
		return math.Pi / 180, nil
	case Arcminute:
		return math.Pi / (180 * 60), nil
	case Arcsecond:
		return math.Pi / (180 * 3600), nil
	default:
		return 0, fmt.Errorf("astromath: %v: %w", u, core.ErrUnsupportedUnit)
	}
}

// LaTeX returns the math-mode axis label fragment for u.
func (u AngleUnit) LaTeX() (string, error) {
	switch u {
	case Radian:
		return "rad", nil
	case Degree:
		return `$^{\circ}$`, nil
	case Arcminute:
		return `$^{\prime}$`, nil
	case Arcsecond:
		return `$^{\prime\prime}$`, nil
	default:
		return "", fmt.Errorf("astromath: %v: %w", u, core.ErrUnsupportedUnit)
	}
}

// ConvertAngle converts value from one angular unit to another.
func ConvertAngle(value float64, from, to AngleUnit) (float64, error) {
	f, err := from.Radians()
	if err != nil {
		return 0, err
	}

	t, err := to.Radians()
	if err != nil {
		return 0, err
	}

	if from == to {
		return value, nil
	}

	return value * f / t, nil
}

// Angle is an angular quantity with its unit.
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// In returns the angle expressed in unit.
func (a Angle) In(unit AngleUnit) (Angle, error) {
	v, err := ConvertAngle(a.Value, a.Unit, unit)
	if err != nil {
		return Angle{}, err
	}

	return Angle{Value: v, Unit: unit}, nil
}

// String implements fmt.Stringer.
func (a Angle) String() string {
	return fmt.Sprintf("%g %v", a.Value, a.Unit)
}
