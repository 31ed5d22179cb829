// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TokenizerLoader: Builds the morphological analyser (kagome)
//   - Normaliser: Extracts plain text from one document format
//   - NormaliserRegistry: Selects the appropriate normaliser
//   - DocumentLoader: Reads input files and detects their type
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ReportStore: Analysis history (SQLite). Without it, results are not persisted.
//   - FileWatcher: Change notification (fsnotify). Without it, watch mode is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
