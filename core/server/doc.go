// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listen port and the read/write timeouts handed to Fiber. The write timeout is
// deliberately generous because POST /sync answers only after a full
// reconciliation pass has finished.
package server
