// Package database handles the report database connection and schema
// inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure SQLite connections based on the application's configuration.
//
// # Connect
//
// The Connect function opens the configured SQLite file (or an in-memory
// database for tests) with a busy timeout and a single-writer pool.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. Features that
// persist records can verify that the live tables still match their expected
// models before writing.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "runs")
package database
