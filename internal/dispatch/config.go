package dispatch

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics turns on per-type timing and outcome collection.
	EnableMetrics bool

	// RecoverFromPanic wraps executor invocation in panic recovery, turning
	// a panic into a StatusError Result instead of crashing the engine
	// loop.
	RecoverFromPanic bool
}

// DefaultConfig returns a Config with sensible defaults: metrics off,
// panic recovery on (an injector misbehaving on one keystroke should never
// take the whole daemon down).
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithMetrics returns a copy of c with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of c with panic recovery set explicitly.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}
