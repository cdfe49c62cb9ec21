package flux

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/zeroflux/core"
	"github.com/cwbudde/zeroflux/internal/testutil"
)

func TestABMagRoundTrip(t *testing.T) {
	for mag := -10.0; mag <= 40.0; mag += 0.25 {
		jy := ABMagToJy(mag)
		back, err := JyToABMag(jy)
		if err != nil {
			t.Fatalf("mag %v: %v", mag, err)
		}
		again := ABMagToJy(back)
		if math.Abs(again-jy)/jy > 1e-9 {
			t.Fatalf("mag %v: round trip %v, want %v", mag, again, jy)
		}
		if math.Abs(back-mag) > 1e-9 {
			t.Fatalf("mag %v: JyToABMag(ABMagToJy) = %v", mag, back)
		}
	}
}

func TestJyRoundTrip(t *testing.T) {
	for _, jy := range []float64{1e-9, 3.5e-6, 0.02, 1, 3631, 2.2e5} {
		mag, err := JyToABMag(jy)
		if err != nil {
			t.Fatal(err)
		}
		if got := ABMagToJy(mag); !core.NearlyEqual(got, jy, 1e-9) {
			t.Fatalf("ABMagToJy(JyToABMag(%v)) = %v", jy, got)
		}
	}
}

func TestABReferencePoints(t *testing.T) {
	zero, err := JyToABMag(ABZeroPointJy)
	if err != nil {
		t.Fatal(err)
	}
	if zero != 0 {
		t.Fatalf("JyToABMag(3631) = %v, want 0", zero)
	}

	one, err := JyToABMag(1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(one-8.90) > 1e-4 {
		t.Fatalf("JyToABMag(1) = %v, want ~8.90", one)
	}

	if got := ABMagToJy(0); got != 3631 {
		t.Fatalf("ABMagToJy(0) = %v, want 3631", got)
	}
}

func TestJyToMaggie(t *testing.T) {
	if got := JyToMaggie(3631.0); got != 1.0 {
		t.Fatalf("JyToMaggie(3631) = %v, want 1", got)
	}
	if got := MaggieToJy(JyToMaggie(12.5)); !core.NearlyEqual(got, 12.5, 1e-15) {
		t.Fatalf("MaggieToJy(JyToMaggie(12.5)) = %v", got)
	}
}

func TestJyToABMagDomain(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN()} {
		if _, err := JyToABMag(f); !errors.Is(err, core.ErrDomain) {
			t.Fatalf("JyToABMag(%v): got %v, want ErrDomain", f, err)
		}
	}
}

func TestSliceForms(t *testing.T) {
	jy := []float64{3631, 36.31, 0.3631}

	mags, err := JyToABMagSlice(jy)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, mags, []float64{0, 5, 10}, 1e-12)
	testutil.RequireSliceRelativelyEqual(t, ABMagToJySlice(mags), jy, 1e-12)
	testutil.RequireSliceNearlyEqual(t, JyToMaggieSlice(jy), []float64{1, 0.01, 0.0001}, 1e-15)
}

func TestJyToABMagSliceNoPartialOutput(t *testing.T) {
	out, err := JyToABMagSlice([]float64{1, 2, 0, 4})
	if !errors.Is(err, core.ErrDomain) {
		t.Fatalf("got %v, want ErrDomain", err)
	}
	if out != nil {
		t.Fatalf("expected no output on failure, got %v", out)
	}
}

func TestFnuFlamRoundTrip(t *testing.T) {
	flam, err := FnuToFlam(3631, 5500)
	if err != nil {
		t.Fatal(err)
	}
	// 3631 Jy at 5500 Å is about 3.6e-9 erg/s/cm^2/Å.
	if flam < 3.5e-9 || flam > 3.7e-9 {
		t.Fatalf("FnuToFlam(3631, 5500) = %v", flam)
	}

	fnu, err := FlamToFnu(flam, 5500)
	if err != nil {
		t.Fatal(err)
	}
	if !core.NearlyEqual(fnu, 3631, 1e-12) {
		t.Fatalf("FlamToFnu(FnuToFlam(3631)) = %v", fnu)
	}

	if _, err := FnuToFlam(1, 0); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("got %v, want ErrDomain", err)
	}
	if _, err := FlamToFnu(1, -5); !errors.Is(err, core.ErrDomain) {
		t.Fatalf("got %v, want ErrDomain", err)
	}
}
