package notify

import "time"

// Config holds NATS publisher configuration.
type Config struct {
	// URL is the NATS server URL. Empty disables publishing.
	URL string `mapstructure:"url" default:""`
	// Subject receives one message per finished sync pass.
	Subject string `mapstructure:"subject" default:"calendly.sync.completed"`
	// ConnectTimeoutSeconds bounds the initial connection.
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" default:"5"`
	// MaxReconnects is the number of reconnect attempts before giving up (-1 forever).
	MaxReconnects int `mapstructure:"max_reconnects" default:"10"`
}

// Enabled reports whether a NATS URL is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

func (c Config) connectTimeout() time.Duration {
	if c.ConnectTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}
