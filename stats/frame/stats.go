// Package frame computes summary statistics of pixel data.
package frame

import (
	"fmt"
	"math"
	"slices"
)

// Stats holds summary statistics of a frame.
type Stats struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Median   float64
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("n=%d mean=%.6g sd=%.6g min=%.6g max=%.6g median=%.6g",
		s.Length, s.Mean, s.StdDev, s.Min, s.Max, s.Median)
}

// Calculate computes all statistics. Mean and variance use Welford's
// online update for numerical stability; the median sorts a copy.
func Calculate(pixels []float64) Stats {
	n := len(pixels)
	if n == 0 {
		return Stats{}
	}

	var (
		mean   float64
		m2     float64
		maxVal = pixels[0]
		maxPos int
		minVal = pixels[0]
		minPos int
	)

	for i, x := range pixels {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	variance := m2 / float64(n)

	return Stats{
		Length:   n,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Median:   MedianInPlace(slices.Clone(pixels)),
	}
}

// Mean returns the arithmetic mean using Kahan summation, or 0 for an
// empty slice.
func Mean(pixels []float64) float64 {
	if len(pixels) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range pixels {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(pixels))
}

// MedianInPlace returns the median of buf, reordering buf. An even count
// averages the two middle values. It returns NaN for an empty slice.
func MedianInPlace(buf []float64) float64 {
	n := len(buf)
	if n == 0 {
		return math.NaN()
	}

	slices.Sort(buf)
	if n%2 == 1 {
		return buf[n/2]
	}

	return (buf[n/2-1] + buf[n/2]) / 2
}
