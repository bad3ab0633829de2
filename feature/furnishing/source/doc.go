// Package source supplies the raw furniture tables a run is built from.
//
// A Source returns two tables of string rows, each starting with a header row:
// furniture types (name, family name, type name) and furniture sets (set code,
// room type, comma-joined furniture names). Where the rows come from is the
// Source's business:
//
//   - Builtin: the standard school/office furnishing tables compiled into the binary.
//   - File: a YAML document on disk.
//   - Storage: two CSV objects in an S3/MinIO bucket.
//   - Database: the furniture_types and furniture_sets tables of the model database.
//
// Load fetches both tables, drops the headers and builds the catalog and set table.
package source
