// Package config provides configuration management for meeting-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv). Defaults come from the `default`
// struct tags of every section and are registered by reflection, which also makes
// every key visible to AutomaticEnv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and timeouts
//   - Log: logging level and format
//   - Database: MySQL (or SQLite) connection details
//   - Calendly: personal access token (CALENDLY_PAT), base URL, per-call timeout, page size
//   - Retry: backoff for remote calls
//   - Sync: scheduler interval and toggles
//   - Reconcile: worker pool and batch size of a pass
//   - Query: fixed UTC offset used to compute "today"
//   - Storage: S3/MinIO report archive
//   - Nats: sync notifications
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.Interval())
package config
