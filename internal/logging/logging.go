// Package logging provides the diagnostic channel: a logr.Logger that writes
// JSON lines to a sink the end user does not see.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// New returns a logger that writes one JSON object per line to w.
// Entries with a V-level above verbosity are dropped.
func New(w io.Writer, verbosity int) logr.Logger {
	var mu sync.Mutex
	return funcr.NewJSON(func(obj string) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = fmt.Fprintln(w, obj)
	}, funcr.Options{
		LogTimestamp: true,
		Verbosity:    verbosity,
	})
}

// Discard returns a logger that drops everything
func Discard() logr.Logger {
	return logr.Discard()
}

// OpenFile opens (or creates) the log file at path in append mode and returns
// a logger writing to it. The caller must close the returned closer.
func OpenFile(path string, verbosity int) (logr.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return logr.Discard(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(f, verbosity), f, nil
}

// Verbosity maps the verbose flag to a logr V-level
func Verbosity(verbose bool) int {
	if verbose {
		return 1
	}
	return 0
}
