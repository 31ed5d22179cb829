// Package filesystem reads input documents from local disk and watches
// them for changes.
//
// The Loader resolves paths and glob patterns (github.com/bmatcuk/doublestar)
// and detects MIME types by extension. The Watcher reports edits using
// github.com/fsnotify/fsnotify.
package filesystem
