package axis

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/zeroflux/core"
)

// digitTolerance absorbs rounding in x/10^k before truncating to the
// leading digit, so 0.003 labels as 3 rather than 2.
const digitTolerance = 1e-9

// Tick is a tick position with its label. An empty label draws an
// unlabelled tick.
type Tick struct {
	Value float64
	Label string
}

// Depower returns the mantissa of x in scientific notation, in [1, 10).
func Depower(x float64) (float64, error) {
	if !(x > 0) || math.IsInf(x, 1) {
		return 0, fmt.Errorf("axis: depower %v: %w", x, core.ErrDomain)
	}

	decade := math.Floor(math.Log10(x))
	m := x / math.Pow(10, decade)

	switch {
	case m >= 10:
		m /= 10
	case m < 1:
		m *= 10
	}

	return m, nil
}

// leadingDigit returns the first significant digit of x.
func leadingDigit(x float64) (int, error) {
	m, err := Depower(x)
	if err != nil {
		return 0, err
	}

	return int(m + digitTolerance), nil
}

// MinorLogLabels keeps the ticks within [axMin, axMax] and labels each with
// its leading digit. Ticks whose mantissa exceeds cfg.LabelMax, and every
// tick whose position among the kept ticks is not a multiple of cfg.Skip,
// get an empty label.
func MinorLogLabels(ticks []float64, axMin, axMax float64, cfg LabelConfig) ([]Tick, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	out := make([]Tick, 0, len(ticks))

	for _, v := range ticks {
		if v < axMin || v > axMax {
			continue
		}

		m, err := Depower(v)
		if err != nil {
			return nil, err
		}

		t := Tick{Value: v}
		if m <= cfg.LabelMax+digitTolerance && len(out)%cfg.Skip == 0 {
			d, _ := leadingDigit(v)
			t.Label = strconv.Itoa(d)
		}

		out = append(out, t)
	}

	return out, nil
}

// MinorLogTicks returns the minor ticks 2..9 × 10^k lying in
// [axMin, axMax].
func MinorLogTicks(axMin, axMax float64) ([]float64, error) {
	if !(axMin > 0) || !(axMax >= axMin) || math.IsInf(axMax, 1) {
		return nil, fmt.Errorf("axis: log range [%v, %v]: %w", axMin, axMax, core.ErrDomain)
	}

	var out []float64

	lo := int(math.Floor(math.Log10(axMin)))
	hi := int(math.Floor(math.Log10(axMax)))

	for k := lo; k <= hi; k++ {
		base := math.Pow(10, float64(k))
		for d := 2; d <= 9; d++ {
			v := float64(d) * base
			if v >= axMin && v <= axMax {
				out = append(out, v)
			}
		}
	}

	return out, nil
}

// MajorLogLabel returns the math-mode label 10^{n} for an exact power of
// ten, and an empty string for any other positive value.
func MajorLogLabel(x float64) (string, error) {
	m, err := Depower(x)
	if err != nil {
		return "", err
	}

	if math.Abs(m-1) > digitTolerance && math.Abs(m-10) > digitTolerance {
		return "", nil
	}

	n := int(math.Round(math.Log10(x)))

	return fmt.Sprintf("$10^{%d}$", n), nil
}
