package testutil

import (
	"math/rand"

	"github.com/cwbudde/zeroflux/core"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// ConstantFrame returns a rows x cols frame filled with value.
func ConstantFrame(value float64, rows, cols int) *core.Array {
	return core.MustFromSlice(Constant(value, rows*cols), rows, cols)
}

// NoisyFrame returns a rows x cols frame of level plus seeded uniform
// noise of the given amplitude.
func NoisyFrame(seed int64, level, amplitude float64, rows, cols int) *core.Array {
	data := DeterministicNoise(seed, amplitude, rows*cols)
	for i := range data {
		data[i] += level
	}
	return core.MustFromSlice(data, rows, cols)
}

// GradientFrame returns a rows x cols frame whose pixel (r, c) holds
// base + r*cols + c.
func GradientFrame(base float64, rows, cols int) *core.Array {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = base + float64(i)
	}
	return core.MustFromSlice(data, rows, cols)
}
