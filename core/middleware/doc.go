// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Assigns every request an id (kept from the X-Ray-ID request header
//     when present), stores it in the Fiber locals and echoes it in the response.
//     logger.WithRayID reads it back so request logs and the logs of a synchronous
//     sync pass share one id.
package middleware
