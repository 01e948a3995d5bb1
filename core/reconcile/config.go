package reconcile

// Config holds tuning for a reconciliation pass.
type Config struct {
	// Workers bounds concurrent invitee fetches within a batch.
	Workers int `mapstructure:"workers" default:"4"`
	// BatchSize is the number of events fetched ahead before their invitees are
	// resolved and the batch is upserted in order.
	BatchSize int `mapstructure:"batch_size" default:"50"`
}

// Normalized returns the config with sane lower bounds applied.
func (c Config) Normalized() Config {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	return c
}
