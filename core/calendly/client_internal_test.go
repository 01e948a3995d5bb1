package calendly

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 7*time.Second, parseRetryAfter("7", now))
	assert.Equal(t, time.Duration(0), parseRetryAfter("", now))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon", now))
	assert.Equal(t, 30*time.Second, parseRetryAfter(now.Add(30*time.Second).Format(http.TimeFormat), now))
	assert.Equal(t, time.Duration(0), parseRetryAfter(now.Add(-time.Minute).Format(http.TimeFormat), now))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad token", errorMessage([]byte(`{"title":"Unauthenticated","message":"bad token"}`), "401"))
	assert.Equal(t, "Unauthenticated", errorMessage([]byte(`{"title":"Unauthenticated"}`), "401"))
	assert.Equal(t, "401 Unauthorized", errorMessage([]byte(`<html>`), "401 Unauthorized"))
}

func TestConfigBounds(t *testing.T) {
	assert.Equal(t, 100, Config{PageSize: 0}.pageSize())
	assert.Equal(t, 100, Config{PageSize: 500}.pageSize())
	assert.Equal(t, 25, Config{PageSize: 25}.pageSize())
	assert.Equal(t, 15*time.Second, Config{}.timeout())
}
