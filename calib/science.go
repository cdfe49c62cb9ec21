package calib

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/zeroflux/core"
)

// CalibrateScience removes bias and flat-field structure from a science
// frame: (sci - bias) / flat, then divided by the exposure time unless
// WithoutExposureScaling is given.
func CalibrateScience(sci Frame, flat, bias *core.Array, opts ...Option) (*core.Array, error) {
	cfg, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	if err := check2D(sci.Pixels); err != nil {
		return nil, err
	}

	if err := core.CheckShapes(sci.Pixels, flat, bias); err != nil {
		return nil, fmt.Errorf("calib: %v: %w", sci, err)
	}

	if cfg.ScaleByExposure {
		if err := checkExposure(sci); err != nil {
			return nil, err
		}
	}

	inv, err := reciprocalFlat(flat)
	if err != nil {
		return nil, err
	}

	out := sci.Pixels.Clone()
	subtractInPlace(out.Data(), bias.Data())
	vecmath.MulBlockInPlace(out.Data(), inv)

	if cfg.ScaleByExposure {
		vecmath.ScaleBlock(out.Data(), out.Data(), 1/sci.ExposureTime)
	}

	return out, nil
}

// reciprocalFlat returns 1/flat per pixel, rejecting zero pixels.
func reciprocalFlat(flat *core.Array) ([]float64, error) {
	data := flat.Data()
	inv := make([]float64, len(data))

	for i, v := range data {
		if v == 0 {
			return nil, fmt.Errorf("calib: flat pixel %d is zero: %w", i, core.ErrDivisionByZero)
		}

		inv[i] = 1 / v
	}

	return inv, nil
}
