package retry

import "time"

// Config holds retry configuration.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int `mapstructure:"max_attempts" default:"4"`
	// InitialDelayMs is the delay before the first retry.
	InitialDelayMs int `mapstructure:"initial_delay_ms" default:"500"`
	// MaxDelayMs caps the computed delay.
	MaxDelayMs int `mapstructure:"max_delay_ms" default:"30000"`
	// BackoffFactor multiplies the delay after every failed attempt.
	BackoffFactor float64 `mapstructure:"backoff_factor" default:"2"`
	// Jitter adds up to 10% random delay to spread retries.
	Jitter bool `mapstructure:"jitter" default:"true"`
}

// DefaultConfig mirrors the struct tag defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    4,
		InitialDelayMs: 500,
		MaxDelayMs:     30000,
		BackoffFactor:  2,
		Jitter:         true,
	}
}

func (c Config) initialDelay() time.Duration {
	return time.Duration(c.InitialDelayMs) * time.Millisecond
}

func (c Config) maxDelay() time.Duration {
	return time.Duration(c.MaxDelayMs) * time.Millisecond
}
