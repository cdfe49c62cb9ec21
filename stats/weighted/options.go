package weighted

import "github.com/cwbudde/zeroflux/core"

// Config selects the weighting scheme and the reduction axis.
type Config struct {
	Sigma   *core.Array
	Weights *core.Array
	Axis    int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig reduces along axis 0 with no weighting chosen.
func DefaultConfig() Config {
	return Config{}
}

// WithSigma requests inverse-variance weights w = 1/σ² and enables the
// propagated error.
func WithSigma(sigma *core.Array) Option {
	return func(cfg *Config) {
		cfg.Sigma = sigma
	}
}

// WithWeights supplies explicit non-negative weights.
func WithWeights(w *core.Array) Option {
	return func(cfg *Config) {
		cfg.Weights = w
	}
}

// WithAxis sets the reduction axis. Negative values count from the last
// axis.
func WithAxis(axis int) Option {
	return func(cfg *Config) {
		cfg.Axis = axis
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
