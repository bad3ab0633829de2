// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: checks the X-API-Key header against the configured key. An empty
//     key disables the check.
//   - rayid: tags every request with a RayID (UUID, or the incoming X-Ray-ID),
//     stored in the "ray_id" local for logger.WithRayID and echoed in the response.
//
// These middleware components are designed to be registered globally or per-route group
// in the main application setup.
package middleware
