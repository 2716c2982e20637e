package writer

import "time"

// Config holds the writer configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// Progress is called after each acknowledged step (optional)
	Progress ProgressCallback

	// AckTimeout bounds the wait for each acknowledgement
	AckTimeout time.Duration

	// Retries is the total number of attempts per write-with-acknowledgement
	// step on transport faults and timeouts
	Retries int

	// Backoff is the fixed delay between retry attempts
	Backoff time.Duration

	// SettleDelay is the pause between subscribing to notifications and the
	// first command; some tags drop the first write otherwise
	SettleDelay time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		AckTimeout:  30 * time.Second,
		Retries:     3,
		Backoff:     500 * time.Millisecond,
		SettleDelay: time.Second,
	}
}

// Option is a functional option for configuring the Writer.
type Option func(*Config)

// WithLogger sets a logger for transfer operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithProgress sets a callback to track transfer progress.
//
// Example:
//
//	w := writer.New(transport, profile,
//	    writer.WithProgress(func(p writer.Progress) {
//	        fmt.Printf("[%s] %.1f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
func WithProgress(callback ProgressCallback) Option {
	return func(c *Config) {
		c.Progress = callback
	}
}

// WithAckTimeout sets the per-step acknowledgement timeout.
// Default is 30 seconds.
func WithAckTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.AckTimeout = timeout
		}
	}
}

// WithRetries sets the total number of attempts per write-with-acknowledgement
// step. Default is 3.
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries > 0 {
			c.Retries = retries
		}
	}
}

// WithBackoff sets the fixed delay between retry attempts.
// Default is 500 milliseconds.
func WithBackoff(backoff time.Duration) Option {
	return func(c *Config) {
		if backoff >= 0 {
			c.Backoff = backoff
		}
	}
}

// WithSettleDelay sets the pause between notification subscription and the
// first command packet. Default is 1 second; zero disables it.
func WithSettleDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.SettleDelay = delay
		}
	}
}
