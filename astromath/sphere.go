package astromath

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/zeroflux/core"
)

// SamplePhi maps a uniform variate u in [0, 1] to an azimuth in [0, 2π]
// for directions distributed uniformly over the sphere.
func SamplePhi(u float64) (float64, error) {
	if err := checkUnit(u); err != nil {
		return 0, err
	}

	return 2 * math.Pi * u, nil
}

// SampleTheta maps a uniform variate u in [0, 1] to a polar angle in
// [0, π] such that directions are uniform over the sphere.
func SampleTheta(u float64) (float64, error) {
	if err := checkUnit(u); err != nil {
		return 0, err
	}

	return math.Acos(1 - 2*u), nil
}

func checkUnit(u float64) error {
	if !(u >= 0 && u <= 1) {
		return fmt.Errorf("astromath: uniform variate %v not in [0,1]: %w", u, core.ErrDomain)
	}

	return nil
}

// SphereSampler draws isotropic directions from a seeded source.
// It is not safe for concurrent use.
type SphereSampler struct {
	rng *rand.Rand
}

// NewSphereSampler creates a sampler with a fixed seed for reproducibility.
func NewSphereSampler(seed int64) *SphereSampler {
	return &SphereSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns a polar angle theta and azimuth phi, in radians.
func (s *SphereSampler) Sample() (theta, phi float64) {
	// Float64 is in [0,1), so neither call can fail.
	theta, _ = SampleTheta(s.rng.Float64())
	phi, _ = SamplePhi(s.rng.Float64())
	return theta, phi
}

// SampleN fills theta and phi with len(theta) directions. The slices must
// have equal length.
func (s *SphereSampler) SampleN(theta, phi []float64) error {
	if len(theta) != len(phi) {
		return fmt.Errorf("astromath: theta has %d entries, phi %d: %w", len(theta), len(phi), core.ErrShapeMismatch)
	}

	for i := range theta {
		theta[i], phi[i] = s.Sample()
	}

	return nil
}
