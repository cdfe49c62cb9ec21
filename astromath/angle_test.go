package astromath

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/zeroflux/core"
)

func TestConvertAngle(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  AngleUnit
		to    AngleUnit
		want  float64
	}{
		{name: "deg to arcmin", value: 1, from: Degree, to: Arcminute, want: 60},
		{name: "arcmin to arcsec", value: 2, from: Arcminute, to: Arcsecond, want: 120},
		{name: "rad to deg", value: math.Pi, from: Radian, to: Degree, want: 180},
		{name: "arcsec to deg", value: 3600, from: Arcsecond, to: Degree, want: 1},
		{name: "identity", value: 0.25, from: Arcsecond, to: Arcsecond, want: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertAngle(tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatal(err)
			}
			if !core.NearlyEqual(got, tt.want, 1e-12) {
				t.Fatalf("ConvertAngle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertAngleUnsupported(t *testing.T) {
	if _, err := ConvertAngle(1, AngleUnit(42), Degree); !errors.Is(err, core.ErrUnsupportedUnit) {
		t.Fatalf("got %v, want ErrUnsupportedUnit", err)
	}
	if _, err := ConvertAngle(1, Degree, AngleUnit(-1)); !errors.Is(err, core.ErrUnsupportedUnit) {
		t.Fatalf("got %v, want ErrUnsupportedUnit", err)
	}
}

func TestParseAngleUnit(t *testing.T) {
	for _, u := range []AngleUnit{Radian, Degree, Arcminute, Arcsecond} {
		got, err := ParseAngleUnit(u.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != u {
			t.Fatalf("ParseAngleUnit(%q) = %v", u.String(), got)
		}
	}
	if _, err := ParseAngleUnit("furlong"); !errors.Is(err, core.ErrUnsupportedUnit) {
		t.Fatalf("got %v, want ErrUnsupportedUnit", err)
	}
}

func TestAngleLaTeX(t *testing.T) {
	s, err := Arcsecond.LaTeX()
	if err != nil {
		t.Fatal(err)
	}
	if s != `$^{\prime\prime}$` {
		t.Fatalf("Arcsecond.LaTeX() = %q", s)
	}
	if _, err := AngleUnit(9).LaTeX(); !errors.Is(err, core.ErrUnsupportedUnit) {
		t.Fatalf("got %v, want ErrUnsupportedUnit", err)
	}
}

func TestAngleConstantsAgree(t *testing.T) {
	r, _ := Arcsecond.Radians()
	if !core.NearlyEqual(r, ArcsecRad, 1e-3) {
		t.Fatalf("arcsec: %v vs %v", r, ArcsecRad)
	}
	r, _ = Arcminute.Radians()
	if !core.NearlyEqual(r, ArcminRad, 1e-4) {
		t.Fatalf("arcmin: %v vs %v", r, ArcminRad)
	}
}

func TestAngleIn(t *testing.T) {
	a := Angle{Value: 0.5, Unit: Arcminute}

	got, err := a.In(Arcsecond)
	if err != nil {
		t.Fatal(err)
	}
	if got.Unit != Arcsecond || !core.NearlyEqual(got.Value, 30, 1e-12) {
		t.Fatalf("In(Arcsecond) = %v, want 30 arcsec", got)
	}
	if s := (Angle{Value: 30, Unit: Arcsecond}).String(); s != "30 arcsec" {
		t.Fatalf("String() = %q", s)
	}

	if _, err := a.In(AngleUnit(42)); !errors.Is(err, core.ErrUnsupportedUnit) {
		t.Fatalf("err = %v, want ErrUnsupportedUnit", err)
	}
}
