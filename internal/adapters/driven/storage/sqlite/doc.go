// Package sqlite provides a SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It backs the ReportStore, which keeps
// the history of analysis reports.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Full results are stored as JSON; the surface forms of each report are indexed
// in a side table so that reports can be found by word.
//
// # Data Location
//
// By default, the database is stored at ~/.text-analyzer/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
