// Package placement moves furniture into rooms.
//
// The package owns the decision logic of a furnishing run and nothing else.
// Everything it touches in the building model goes through the Host and
// Workspace interfaces: enumerating rooms, reading and writing their named
// parameters, finding and activating family symbols and creating instances.
//
// # Run
//
// For each room the Engine reads the set-code parameter. A room without one is
// skipped. Otherwise every set with that code is applied in table order: each
// furniture name is resolved through the catalog and the host, and every hit is
// instantiated at the room's reference point. After a set is applied its item
// count is written to the room's count parameter, if the room has one. When two
// sets match, the second write overwrites the first.
//
// Misses (no catalog entry, no family symbol, no count parameter) are skipped
// silently. Host failures abort the run, and since the run executes inside one
// unit of work nothing is committed.
package placement
