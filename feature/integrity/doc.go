// Package integrity provides operational health checks for the sync service.
//
// # Checks Provided
//
//   - Schema: Validates that the calendly_events table has every column the model maps.
//   - Storage: Checks that the sync report bucket exists (only when archiving is enabled).
//   - Calendly: Resolves the configured credential to a user, distinguishing a rejected credential from an unreachable API.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true to migrate).
//   - GET /integrity/storage : Runs the bucket check (supports ?fix=true to create it).
//   - GET /integrity/calendly : Validates the credential.
package integrity
