package calib

import (
	"fmt"
	"math"

	"github.com/cwbudde/zeroflux/core"
)

// Frame is a 2-D pixel array with the exposure time it was taken with.
type Frame struct {
	Pixels       *core.Array
	ExposureTime float64 // seconds
	// Name labels the frame in batch logs and results; it may be empty.
	Name string
}

// NewFrame wraps 2-D pixels as a Frame.
func NewFrame(pixels *core.Array, exposureTime float64) (Frame, error) {
	f := Frame{Pixels: pixels, ExposureTime: exposureTime}
	if err := check2D(pixels); err != nil {
		return Frame{}, err
	}

	return f, nil
}

func (f Frame) String() string {
	if f.Name != "" {
		return f.Name
	}

	if f.Pixels == nil {
		return "frame<nil>"
	}

	return fmt.Sprintf("frame%v", f.Pixels.Shape())
}

func check2D(a *core.Array) error {
	if a == nil {
		return fmt.Errorf("calib: nil pixels: %w", core.ErrEmptyInput)
	}

	if a.NDim() != 2 {
		return fmt.Errorf("calib: frame is %d-d, want 2-d: %w", a.NDim(), core.ErrShapeMismatch)
	}

	return nil
}

func checkExposure(f Frame) error {
	if !(f.ExposureTime > 0) || math.IsInf(f.ExposureTime, 0) {
		return fmt.Errorf("calib: %v exposure time %v: %w", f, f.ExposureTime, core.ErrDomain)
	}

	return nil
}

// checkStack validates that arrays are non-empty, 2-D and equally shaped.
func checkStack(arrays []*core.Array) error {
	if len(arrays) == 0 {
		return fmt.Errorf("calib: no frames: %w", core.ErrEmptyInput)
	}

	for _, a := range arrays {
		if err := check2D(a); err != nil {
			return err
		}
	}

	if err := core.CheckShapes(arrays...); err != nil {
		return fmt.Errorf("calib: %w", err)
	}

	return nil
}
