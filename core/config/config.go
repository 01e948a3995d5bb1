package config

import (
	"reflect"
	"strings"

	"meeting-sync/core/calendly"
	"meeting-sync/core/database"
	"meeting-sync/core/logger"
	"meeting-sync/core/notify"
	"meeting-sync/core/reconcile"
	"meeting-sync/core/retry"
	"meeting-sync/core/scheduler"
	"meeting-sync/core/server"
	"meeting-sync/core/storage"
	"meeting-sync/feature/meetings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Calendly holds the remote API credential and client settings.
	Calendly calendly.Config `mapstructure:"calendly"`
	// Retry holds backoff settings for remote calls.
	Retry retry.Config `mapstructure:"retry"`
	// Sync holds configuration for the periodic sync trigger.
	Sync scheduler.Config `mapstructure:"sync"`
	// Reconcile holds tuning for a single pass.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Query holds the timezone policy of the read API.
	Query meetings.Config `mapstructure:"query"`
	// Storage holds configuration for the sync report archive (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Nats holds configuration for sync notifications.
	Nats notify.Config `mapstructure:"nats"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CALENDLY_PAT -> calendly.pat)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
