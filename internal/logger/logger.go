// Package logger provides verbose logging for the text analyzer.
// When verbose mode is enabled via the --verbose flag, messages describing
// each analysis stage are printed to stderr. Warnings about degraded
// operation can be forced on regardless of verbosity.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu          sync.RWMutex
	verbose     bool
	alwaysWarn  bool
	output      io.Writer = os.Stderr
	clock                 = time.Now
	sectionMark           = "==="
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetAlwaysWarn makes Warn print even when verbose mode is off.
func SetAlwaysWarn(v bool) {
	mu.Lock()
	defer mu.Unlock()
	alwaysWarn = v
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func printf(enabled bool, prefix, format string, args ...any) {
	if enabled {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	printf(verbose, "[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n%s %s %s\n", sectionMark, name, sectionMark)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	printf(verbose, "[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode or always-warn is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	printf(verbose || alwaysWarn, "[WARN] ", format, args...)
}

// Timed logs how long a stage took. Call the returned function when the
// stage ends:
//
//	defer logger.Timed("tokenize")()
func Timed(stage string) func() {
	start := clock()
	return func() {
		Debug("%s took %s", stage, clock().Sub(start).Round(time.Microsecond))
	}
}
