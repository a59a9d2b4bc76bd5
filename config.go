package fock

// Tolerance is the default pruning threshold, the float64 machine epsilon.
// Amplitudes with magnitude at or below it are treated as exact zeros.
const Tolerance = 0x1p-52

type Config struct {
	Tolerance float64
	Tracer    Tracer
	Metrics   *Metrics
}

func NewConfig() *Config {
	return &Config{
		Tolerance: Tolerance,
	}
}

// Option is a function type for configuring an Apply call
type Option func(*Config)

// WithTolerance overrides the pruning threshold. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(c *Config) {
		if tol > 0 {
			c.Tolerance = tol
		}
	}
}

// WithTracer installs a callback that receives every ladder transition.
func WithTracer(tracer Tracer) Option {
	return func(c *Config) {
		c.Tracer = tracer
	}
}

// WithMetrics records counters for the call into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

func newConfig(opts []Option) *Config {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}
