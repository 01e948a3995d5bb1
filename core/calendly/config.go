package calendly

import "time"

// Config holds configuration for the Calendly API client.
type Config struct {
	// PAT is the personal access token sent as bearer credential on every call.
	PAT string `mapstructure:"pat" default:""`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.calendly.com"`
	// TimeoutSeconds bounds every single HTTP call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// PageSize is the requested collection page size (Calendly allows 1-100).
	PageSize int `mapstructure:"page_size" default:"100"`
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) pageSize() int {
	if c.PageSize <= 0 || c.PageSize > 100 {
		return 100
	}
	return c.PageSize
}
