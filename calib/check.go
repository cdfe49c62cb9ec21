package calib

import (
	"fmt"
	"math"

	"github.com/cwbudde/zeroflux/core"
	"github.com/cwbudde/zeroflux/stats/frame"
)

// MinFlatSpread is the smallest standard deviation, relative to the mean,
// of a flat that IsFlatDegenerate accepts.
const MinFlatSpread = 1e-8

// CheckFlat inspects a master flat before it is used and returns its
// statistics. Non-finite pixels and flats whose values reach or cross
// zero are rejected.
func CheckFlat(flat *core.Array) (frame.Stats, error) {
	if err := check2D(flat); err != nil {
		return frame.Stats{}, err
	}

	for i, v := range flat.Data() {
		if !core.IsFinite(v) {
			return frame.Stats{}, fmt.Errorf("calib: flat pixel %d is %v: %w", i, v, core.ErrDomain)
		}
	}

	st := frame.Calculate(flat.Data())

	if st.Min <= 0 && st.Max >= 0 {
		if st.Min == 0 || st.Max == 0 {
			return st, fmt.Errorf("calib: flat contains zero pixels: %w", core.ErrDivisionByZero)
		}

		return st, fmt.Errorf("calib: flat spans zero [%g, %g]: %w", st.Min, st.Max, core.ErrDomain)
	}

	return st, nil
}

// IsFlatDegenerate reports whether a flat is too uniform to carry any
// illumination pattern. For a raw flat this usually means a dead or
// saturated exposure; for a master flat it means flat-fielding is a no-op.
func IsFlatDegenerate(st frame.Stats) bool {
	if st.Length == 0 || st.Mean == 0 {
		return true
	}

	return st.StdDev/math.Abs(st.Mean) < MinFlatSpread
}
