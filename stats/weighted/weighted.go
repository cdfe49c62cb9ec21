package weighted

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/zeroflux/core"
)

// Result holds a weighted reduction. Mean and Error have the shape of the
// input with the reduced axis removed; reducing a 1-D input yields a
// 0-dimensional array holding one value.
type Result struct {
	Mean *core.Array
	// Error is the propagated uncertainty, set only for sigma weighting.
	Error *core.Array
}

// HasError reports whether a propagated error is available.
func (r Result) HasError() bool { return r.Error != nil }

// Scalar returns the mean and error of a reduction that produced a single
// value. ok is false when the result holds more than one value. err is
// NaN when no error was propagated.
func (r Result) Scalar() (mean, err float64, ok bool) {
	if r.Mean == nil || r.Mean.Len() != 1 {
		return 0, 0, false
	}

	err = math.NaN()
	if r.Error != nil {
		err = r.Error.Data()[0]
	}

	return r.Mean.Data()[0], err, true
}

// Mean computes the weighted mean of values along the configured axis.
func Mean(values *core.Array, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if values == nil || values.Len() == 0 {
		return Result{}, fmt.Errorf("weighted: values: %w", core.ErrEmptyInput)
	}

	switch {
	case cfg.Sigma == nil && cfg.Weights == nil:
		return Result{}, fmt.Errorf("weighted: %w", core.ErrMissingWeight)
	case cfg.Sigma != nil && cfg.Weights != nil:
		return Result{}, fmt.Errorf("weighted: %w", core.ErrConflictingWeight)
	}

	layout, err := values.Axis(cfg.Axis)
	if err != nil {
		return Result{}, fmt.Errorf("weighted: %w", err)
	}

	var w []float64
	if cfg.Sigma != nil {
		if !values.SameShape(cfg.Sigma) {
			return Result{}, fmt.Errorf("weighted: sigma shape %v, values %v: %w",
				cfg.Sigma.Shape(), values.Shape(), core.ErrShapeMismatch)
		}

		w, err = inverseVariance(cfg.Sigma.Data(), layout)
	} else {
		if !values.SameShape(cfg.Weights) {
			return Result{}, fmt.Errorf("weighted: weights shape %v, values %v: %w",
				cfg.Weights.Shape(), values.Shape(), core.ErrShapeMismatch)
		}

		w, err = checkWeights(cfg.Weights.Data())
	}

	if err != nil {
		return Result{}, err
	}

	if err := normalize(w, layout); err != nil {
		return Result{}, err
	}

	mean, err := core.NewArray(layout.Reduced...)
	if err != nil {
		return Result{}, err
	}

	// xw holds x*w, reused for σ²w² when propagating errors.
	xw := make([]float64, len(w))
	vecmath.MulBlock(xw, values.Data(), w)
	sumLanes(mean.Data(), xw, layout)

	res := Result{Mean: mean}
	if cfg.Sigma == nil {
		return res, nil
	}

	// sqrt(Σ σ²w²) is the 2-norm of σw.
	vecmath.MulBlock(xw, cfg.Sigma.Data(), w)

	errArr, _ := core.NewArray(layout.Reduced...)
	laneNorms(errArr.Data(), xw, layout)

	res.Error = errArr
	return res, nil
}

// inverseVariance returns weights proportional to 1/σ², scaled per lane
// as (σ_min/σ)² so tiny sigmas cannot overflow.
func inverseVariance(sigma []float64, l core.AxisLayout) ([]float64, error) {
	for i, s := range sigma {
		if s == 0 {
			return nil, fmt.Errorf("weighted: sigma[%d] is zero: %w", i, core.ErrDivisionByZero)
		}

		if !(s > 0) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("weighted: sigma[%d] = %v: %w", i, s, core.ErrDomain)
		}
	}

	w := make([]float64, len(sigma))

	for o := 0; o < l.Outer; o++ {
		for in := 0; in < l.Inner; in++ {
			smin := math.Inf(1)
			for k := 0; k < l.N; k++ {
				smin = min(smin, sigma[l.Index(o, k, in)])
			}

			for k := 0; k < l.N; k++ {
				idx := l.Index(o, k, in)
				r := smin / sigma[idx]
				w[idx] = r * r
			}
		}
	}

	return w, nil
}

// checkWeights copies explicit weights after validating them.
func checkWeights(weights []float64) ([]float64, error) {
	w := make([]float64, len(weights))
	for i, v := range weights {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("weighted: weight[%d] = %v: %w", i, v, core.ErrDomain)
		}

		w[i] = v
	}

	return w, nil
}

// normalize rescales w so each lane along the axis sums to one. Lanes are
// first divided by their largest weight, so the sum stays finite.
func normalize(w []float64, l core.AxisLayout) error {
	for o := 0; o < l.Outer; o++ {
		for in := 0; in < l.Inner; in++ {
			var peak float64
			for k := 0; k < l.N; k++ {
				peak = max(peak, w[l.Index(o, k, in)])
			}

			if peak == 0 {
				return fmt.Errorf("weighted: weights along lane %d sum to zero: %w", o*l.Inner+in, core.ErrDivisionByZero)
			}

			var sum float64
			for k := 0; k < l.N; k++ {
				idx := l.Index(o, k, in)
				w[idx] /= peak
				sum += w[idx]
			}

			for k := 0; k < l.N; k++ {
				w[l.Index(o, k, in)] /= sum
			}
		}
	}

	return nil
}

// sumLanes writes the sum along the axis of every lane of src into dst.
func sumLanes(dst, src []float64, l core.AxisLayout) {
	for o := 0; o < l.Outer; o++ {
		// Lanes of one outer block are contiguous rows of Inner values.
		row := dst[o*l.Inner : (o+1)*l.Inner]
		clear(row)

		for k := 0; k < l.N; k++ {
			start := l.Index(o, k, 0)
			vecmath.AddBlockInPlace(row, src[start:start+l.Inner])
		}
	}
}

// laneNorms writes the Euclidean norm along the axis of every lane of src
// into dst, scaling by the lane's largest magnitude to avoid underflow.
func laneNorms(dst, src []float64, l core.AxisLayout) {
	for o := 0; o < l.Outer; o++ {
		for in := 0; in < l.Inner; in++ {
			var peak float64
			for k := 0; k < l.N; k++ {
				peak = max(peak, math.Abs(src[l.Index(o, k, in)]))
			}

			var norm float64
			if peak > 0 {
				var sq float64
				for k := 0; k < l.N; k++ {
					r := src[l.Index(o, k, in)] / peak
					sq += r * r
				}

				norm = peak * math.Sqrt(sq)
			}

			dst[o*l.Inner+in] = norm
		}
	}
}
