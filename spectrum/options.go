package spectrum

// Config holds construction settings for a Spectrum.
type Config struct {
	// Frame is the frame the wavelengths are given in.
	Frame Frame
	// Redshift is used by ToRest and ToObserved.
	Redshift float64
}

// Option mutates spectrum configuration.
type Option func(*Config)

// DefaultConfig returns an observed-frame spectrum at redshift zero.
func DefaultConfig() Config {
	return Config{Frame: Observed}
}

// WithFrame declares the frame of the input wavelengths.
func WithFrame(f Frame) Option {
	return func(cfg *Config) {
		cfg.Frame = f
	}
}

// WithRedshift sets the source redshift.
func WithRedshift(z float64) Option {
	return func(cfg *Config) {
		cfg.Redshift = z
	}
}

// ApplyOptions applies opts to DefaultConfig. Nil options are skipped.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
