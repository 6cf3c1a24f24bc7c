// Package sqlite provides a SQLite-based implementation of the history port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Files are named NNN_description.up.sql and applied
// in order; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.radix/data/history.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. SQLite runs in WAL mode with a
// busy timeout.
package sqlite
