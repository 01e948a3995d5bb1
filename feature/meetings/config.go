package meetings

import (
	"time"

	"meeting-sync/core/utils"
)

// Config holds the read API's timezone policy.
type Config struct {
	// UTCOffsetMinutes is the fixed offset "today" is computed in (330 = UTC+05:30).
	UTCOffsetMinutes int `mapstructure:"utc_offset_minutes" default:"330"`
}

// Location returns the fixed-offset zone for date filtering.
func (c Config) Location() *time.Location {
	return utils.FixedZone(c.UTCOffsetMinutes)
}
