package snr

// Config holds the optional noise terms of the CCD equation.
type Config struct {
	// Dark is the dark current per pixel: a rate for Rate, a total for
	// Counts.
	Dark float64
	// ReadNoise is the read noise per pixel in electrons RMS.
	ReadNoise float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a noiseless detector: no dark current, no read
// noise.
func DefaultConfig() Config {
	return Config{}
}

// WithDark sets the dark current. Negative values are rejected when the
// equation is evaluated.
func WithDark(dark float64) Option {
	return func(cfg *Config) {
		cfg.Dark = dark
	}
}

// WithReadNoise sets the read noise in electrons RMS.
func WithReadNoise(rn float64) Option {
	return func(cfg *Config) {
		cfg.ReadNoise = rn
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
