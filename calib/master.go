package calib

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/zeroflux/core"
	"github.com/cwbudde/zeroflux/stats/frame"
)

// columnBuf holds pooled scratch for one pixel's values across a stack.
type columnBuf struct {
	data []float64
}

var columnPool = sync.Pool{
	New: func() any { return &columnBuf{} },
}

func getColumn(n int) *columnBuf {
	buf := columnPool.Get().(*columnBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf
}

// medianStack returns the per-pixel median of equally shaped arrays.
func medianStack(stack []*core.Array) *core.Array {
	out := stack[0].Clone()
	if len(stack) == 1 {
		return out
	}

	col := getColumn(len(stack))
	defer columnPool.Put(col)

	dst := out.Data()
	for p := range dst {
		for i, a := range stack {
			col.data[i] = a.Data()[p]
		}

		dst[p] = frame.MedianInPlace(col.data)
	}

	return out
}

// MasterBias median-combines bias frames pixel by pixel.
func MasterBias(frames []*core.Array) (*core.Array, error) {
	if err := checkStack(frames); err != nil {
		return nil, err
	}

	return medianStack(frames), nil
}

// MasterFlat builds a normalized master flat. Each flat has bias
// subtracted and is divided by its exposure time; the per-pixel median of
// the results is then divided by its own mean, so the master flat has
// mean one.
func MasterFlat(flats []Frame, bias *core.Array) (*core.Array, error) {
	if len(flats) == 0 {
		return nil, fmt.Errorf("calib: no flat frames: %w", core.ErrEmptyInput)
	}

	if err := check2D(bias); err != nil {
		return nil, fmt.Errorf("calib: master bias: %w", err)
	}

	stack := make([]*core.Array, 0, len(flats)+1)
	for _, f := range flats {
		if err := checkExposure(f); err != nil {
			return nil, err
		}

		stack = append(stack, f.Pixels)
	}

	if err := checkStack(append(stack, bias)); err != nil {
		return nil, err
	}

	rates := make([]*core.Array, len(flats))
	for i, f := range flats {
		r := f.Pixels.Clone()
		subtractInPlace(r.Data(), bias.Data())
		vecmath.ScaleBlock(r.Data(), r.Data(), 1/f.ExposureTime)
		rates[i] = r
	}

	med := medianStack(rates)

	mean := frame.Mean(med.Data())
	if mean == 0 {
		return nil, fmt.Errorf("calib: master flat has zero mean: %w", core.ErrDivisionByZero)
	}

	if !core.IsFinite(mean) {
		return nil, fmt.Errorf("calib: master flat mean %v: %w", mean, core.ErrDomain)
	}

	data := med.Data()
	for i := range data {
		data[i] /= mean
	}

	return med, nil
}

// subtractInPlace computes dst[i] -= src[i].
func subtractInPlace(dst, src []float64) {
	neg := make([]float64, len(src))
	vecmath.ScaleBlock(neg, src, -1)
	vecmath.AddBlockInPlace(dst, neg)
}
