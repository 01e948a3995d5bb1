package scheduler

import "time"

// Config holds configuration for the periodic sync trigger.
type Config struct {
	// Enabled turns the timer trigger on. On-demand syncs work either way.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// IntervalSeconds is the tick period.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300"`
	// RunOnStart fires one pass immediately when the scheduler starts.
	RunOnStart bool `mapstructure:"run_on_start" default:"false"`
}

// Interval returns the tick period, falling back to five minutes.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}
