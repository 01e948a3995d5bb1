// Package loader registers HTTP features on the Fiber app.
//
// A feature reports its name and whether it is enabled, and mounts its routes
// in Load. The Manager loads features in registration order, skipping disabled
// ones and stopping at the first Load error.
//
// The start command registers three features: events (the read API), sync
// (on-demand sync, status and archived reports) and integrity (operational
// checks).
package loader
