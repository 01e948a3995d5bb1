// Package database handles database connections.
//
// It wraps GORM to configure either a MySQL connection (production) or a SQLite
// database (local runs and tests) from the application's configuration.
//
// # Connect
//
// Connect opens the dialector selected by Config.Driver, applies pool limits
// suited to the driver and pings the database before returning. MySQL DSNs are
// built with parseTime and a UTC location so that stored meeting times round-trip
// without drifting into the server's local zone.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
