package ordering

import "time"

const (
	defaultXDelay = 0
	defaultYDelay = 600 * time.Nanosecond
	defaultSleep  = 500 * time.Nanosecond
)

type config struct {
	xDelay time.Duration
	yDelay time.Duration
	sleep  time.Duration
}

func newConfig(opts []Option) config {
	cfg := config{xDelay: defaultXDelay, yDelay: defaultYDelay, sleep: defaultSleep}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option tunes the timing of an experiment.
type Option func(c *config)

// WithDelays sets how long the x and y writers of RunSeqCst wait before storing.
func WithDelays(x, y time.Duration) Option {
	return func(c *config) {
		c.xDelay = x
		c.yDelay = y
	}
}

// WithSleep sets how long the first goroutine of RunRelaxed sleeps before reading.
func WithSleep(d time.Duration) Option {
	return func(c *config) {
		c.sleep = d
	}
}
