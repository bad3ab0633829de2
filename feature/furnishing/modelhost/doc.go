// Package modelhost stores a building model in a relational database and
// exposes it to the placement engine.
//
// Tables:
//   - rooms: number, name and reference point (placed = false when the room has none)
//   - room_parameters: named text parameters; a room without a row has no such parameter
//   - family_symbols: loadable family/type pairs and their activation flag
//   - family_instances: placed furniture
//
// A unit of work is a database transaction, so a failed run leaves the model
// exactly as it was.
package modelhost
