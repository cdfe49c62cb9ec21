package axis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/zeroflux/astromath"
	"github.com/cwbudde/zeroflux/core"
)

// MaxTicks bounds the number of ticks AngularTicks will produce.
const MaxTicks = 1 << 20

// AngularTicks places ticks every tickEvery along an image axis running
// from pixel 0 to axMax, given the image's pixel scale (angle per pixel).
// Tick values are pixel positions; labels give the angle in the unit of
// tickEvery, with as many decimals as tickEvery is written with.
func AngularTicks(axMax float64, pixScale, tickEvery astromath.Angle) ([]Tick, error) {
	if !(axMax >= 0) || math.IsInf(axMax, 1) {
		return nil, fmt.Errorf("axis: axis extent %v: %w", axMax, core.ErrDomain)
	}

	if !(pixScale.Value > 0) || !(tickEvery.Value > 0) || math.IsInf(pixScale.Value, 1) || math.IsInf(tickEvery.Value, 1) {
		return nil, fmt.Errorf("axis: pixel scale %v, tick interval %v: %w", pixScale, tickEvery, core.ErrDomain)
	}

	scale, err := pixScale.In(tickEvery.Unit)
	if err != nil {
		return nil, err
	}

	stride := tickEvery.Value / scale.Value
	count := math.Floor(axMax/stride) + 1
	if !(stride > 0) || math.IsInf(stride, 1) || !(count <= MaxTicks) {
		return nil, fmt.Errorf("axis: %v ticks of %v pixels over %v pixels: %w", count, stride, axMax, core.ErrDomain)
	}

	n := int(count)
	format := "%." + strconv.Itoa(Decimals(tickEvery.Value)) + "f"

	ticks := make([]Tick, n)
	for i := range ticks {
		pos := float64(i) * stride
		ticks[i] = Tick{Value: pos, Label: fmt.Sprintf(format, pos*scale.Value)}
	}

	return ticks, nil
}

// Decimals returns the number of digits after the decimal point in the
// shortest representation of v, or 0 for whole numbers.
func Decimals(v float64) int {
	if v == math.Trunc(v) {
		return 0
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}

	return 0
}

// AngularUnitLabel returns the unit suffix for an image axis. With
// tickEvery set, the axis carries AngularTicks labels and the suffix names
// their unit, e.g. " [$^{\prime\prime}$]". Without it the axis stays in
// pixels and the suffix gives the pixel scale, e.g.
// " [0.2$^{\prime\prime}$/pix]".
func AngularUnitLabel(pixScale astromath.Angle, tickEvery *astromath.Angle) (string, error) {
	if tickEvery != nil {
		sym, err := tickEvery.Unit.LaTeX()
		if err != nil {
			return "", err
		}

		return " [" + sym + "]", nil
	}

	sym, err := pixScale.Unit.LaTeX()
	if err != nil {
		return "", err
	}

	return " [" + strconv.FormatFloat(pixScale.Value, 'g', -1, 64) + sym + "/pix]", nil
}
