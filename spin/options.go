package spin

type config struct {
	strategy Strategy
}

// Option configures a Mutex created by New.
type Option func(c *config)

// WithStrategy sets the wait strategy used while the lock is contended.
// A nil Strategy keeps the default pure spin.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		if s != nil {
			c.strategy = s
		}
	}
}
