// Package catalog holds the two read-only tables a furnishing run is built from.
//
// A Catalog maps a logical furniture name ("desk", "task chair") to the concrete
// placeable item it stands for: a family name and a type name in the building
// model. A SetTable lists furniture sets: a set code, a descriptive room type
// and the ordered furniture names the set contains. Names may repeat within a
// set; every repetition is one more instance.
//
// Both tables are built once per run from rows of strings, with the header row
// already removed (see StripHeader), and are never mutated afterwards.
//
// # Matching rules
//
//   - Catalog keys are stored exactly as given. Lookup trims the query only.
//   - When a catalog name appears twice, the first row wins.
//   - Set items are split on "," without trimming; empty tokens are kept.
//   - Set codes are not unique; Match returns every definition with the code.
package catalog
