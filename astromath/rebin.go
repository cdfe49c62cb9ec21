package astromath

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/zeroflux/core"
)

// RebinMethod selects how pixels in a block are combined.
type RebinMethod int

const (
	// RebinMean averages each block.
	RebinMean RebinMethod = iota
	// RebinSum adds each block.
	RebinSum
)

// Rebin2D reduces a 2-D array to rows x cols by combining equal-sized
// rectangular blocks. The target dimensions must divide the source
// dimensions exactly.
func Rebin2D(arr *core.Array, rows, cols int, method RebinMethod) (*core.Array, error) {
	if arr == nil {
		return nil, fmt.Errorf("astromath: rebin: %w", core.ErrEmptyInput)
	}

	if arr.NDim() != 2 {
		return nil, fmt.Errorf("astromath: rebin needs a 2-D array, got %d-d: %w", arr.NDim(), core.ErrShapeMismatch)
	}

	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("astromath: rebin to %dx%d: %w", rows, cols, core.ErrDomain)
	}

	if method != RebinMean && method != RebinSum {
		return nil, fmt.Errorf("astromath: unknown rebin method %d: %w", method, core.ErrDomain)
	}

	srcRows, srcCols := arr.Dim(0), arr.Dim(1)
	if srcRows%rows != 0 || srcCols%cols != 0 {
		return nil, fmt.Errorf("astromath: %dx%d does not divide %dx%d: %w", rows, cols, srcRows, srcCols, core.ErrShapeMismatch)
	}

	fy, fx := srcRows/rows, srcCols/cols
	out, err := core.NewArray(rows, cols)
	if err != nil {
		return nil, err
	}

	outData := out.Data()
	in := arr.Data()
	rowSums := make([]float64, cols)

	for r := 0; r < rows; r++ {
		dst := outData[r*cols : (r+1)*cols]

		for y := r * fy; y < (r+1)*fy; y++ {
			line := in[y*srcCols : (y+1)*srcCols]
			for c := range rowSums {
				var s float64
				for _, v := range line[c*fx : (c+1)*fx] {
					s += v
				}
				rowSums[c] = s
			}

			vecmath.AddBlockInPlace(dst, rowSums)
		}

		if method == RebinMean {
			vecmath.ScaleBlock(dst, dst, 1/float64(fx*fy))
		}
	}

	return out, nil
}
