package epipolar

// DefaultTolerance governs both the SVD rank determination in the
// nullspace stage and the imaginary-part filter in the eigen-extraction
// stage. It is not a general-purpose numerical fudge factor.
const DefaultTolerance = 1e-4

// Config holds the two immutable configuration scalars the solver takes.
// It carries no mutable or shared state; a Config is safe to reuse across
// concurrent Solve calls from independent RANSAC workers.
type Config struct {
	// Tolerance bounds SVD nullspace extraction and the imaginary-part
	// filter and degenerate-normalization guard during eigen-extraction.
	Tolerance float64
	// Verbose gates diagnostic logging on the input-size guard.
	Verbose bool
}

// Option configures a Config, following the functional-option convention
// used by x/options and pkg/vision/reader.
type Option func(*Config)

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(c *Config) { c.Tolerance = tol }
}

// WithVerbose enables diagnostic logging of invalid-input-count failures.
func WithVerbose(v bool) Option {
	return func(c *Config) { c.Verbose = v }
}

func newConfig(opts ...Option) Config {
	cfg := Config{Tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
