// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections based on the application's configuration.
//
// # Connect
//
// Connect establishes a connection to the building model database. The same
// connection serves the furnishing data source (furniture_types, furniture_sets)
// and the relational building model (rooms, parameters, family symbols).
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table so that callers can verify that the
// database carries the schema they expect before mutating it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "rooms")
package database
