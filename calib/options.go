package calib

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Config holds calibration settings.
type Config struct {
	// ScaleByExposure divides calibrated science frames by their exposure
	// time, yielding count rates.
	ScaleByExposure bool
	// Parallelism bounds the number of frames a Batch calibrates at once.
	Parallelism int
	// Logger receives per-frame outcomes from a Batch.
	Logger *slog.Logger
}

// Option mutates calibration configuration.
type Option func(*Config) error

// DefaultConfig returns exposure scaling enabled, one worker per CPU and a
// logger that discards everything.
func DefaultConfig() Config {
	return Config{
		ScaleByExposure: true,
		Parallelism:     runtime.GOMAXPROCS(0),
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// WithoutExposureScaling leaves calibrated frames in counts.
func WithoutExposureScaling() Option {
	return WithExposureScaling(false)
}

// WithExposureScaling sets whether calibrated frames are divided by their
// exposure time.
func WithExposureScaling(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.ScaleByExposure = enabled
		return nil
	}
}

// WithParallelism bounds concurrent frame calibration in a Batch.
func WithParallelism(n int) Option {
	return func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("calib: parallelism must be >= 1: %d", n)
		}

		cfg.Parallelism = n

		return nil
	}
}

// WithLogger routes Batch logging to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) error {
		if l != nil {
			cfg.Logger = l
		}

		return nil
	}
}

// ApplyOptions applies opts to DefaultConfig. Nil options are skipped.
func ApplyOptions(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}
