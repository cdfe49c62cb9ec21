package axis

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSkip is returned for a label skip smaller than one.
var ErrInvalidSkip = errors.New("axis: label skip must be >= 1")

const (
	defaultLabelMax = 7
	defaultSkip     = 1
)

// LabelConfig controls which minor log ticks are labelled.
type LabelConfig struct {
	// LabelMax is the largest leading digit that still gets a label.
	LabelMax float64
	// Skip labels only every Skip-th tick in range.
	Skip int
}

// LabelOption configures a LabelConfig.
type LabelOption func(*LabelConfig) error

// DefaultLabelConfig labels digits up to 7 on every tick.
func DefaultLabelConfig() LabelConfig {
	return LabelConfig{LabelMax: defaultLabelMax, Skip: defaultSkip}
}

// WithLabelMax sets the largest labelled digit, normally in [2, 9].
func WithLabelMax(v float64) LabelOption {
	return func(cfg *LabelConfig) error {
		if math.IsNaN(v) {
			return fmt.Errorf("axis: label max must not be NaN")
		}

		cfg.LabelMax = v

		return nil
	}
}

// WithSkip labels only every n-th tick.
func WithSkip(n int) LabelOption {
	return func(cfg *LabelConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidSkip, n)
		}

		cfg.Skip = n

		return nil
	}
}

// NewLabelConfig applies opts to DefaultLabelConfig. Nil options are
// skipped.
func NewLabelConfig(opts ...LabelOption) (LabelConfig, error) {
	cfg := DefaultLabelConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return LabelConfig{}, err
		}
	}

	return cfg, nil
}

func (c LabelConfig) validate() error {
	if c.Skip < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSkip, c.Skip)
	}

	return nil
}
