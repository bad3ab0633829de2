// Package furnishing implements the furnishing feature: moving standard
// furniture sets into the rooms of a building model.
//
// # Components
//
//   - Service: loads and caches the furniture tables, expands sets and runs the placement engine.
//   - Handler: exposes the tables and the run over HTTP.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET  /furnishing/catalog     : Catalog entries in table order.
//   - GET  /furnishing/sets        : Set definitions in table order.
//   - GET  /furnishing/sets/:code  : Every set with the code, resolved against the catalog.
//   - GET  /furnishing/rooms       : Rooms with their set code and furniture count.
//   - POST /furnishing/run         : Furnish all rooms (?dry_run=true to preview).
package furnishing
