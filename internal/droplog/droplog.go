// Package droplog records file paths selected for removal.
//
// The log is append-only, one UTF-8 path per line, and is never truncated by
// this tool. Actual deletion is deferred to an external consumer of the log;
// appending here is the durable half of the drop-commit step and must happen
// before the entry leaves the catalog's own bookkeeping.
package droplog

import (
	"fmt"
	"os"
)

// Log appends drop decisions to a single file.
type Log struct {
	path string
}

// New returns a Log writing to path. The file is created on first append.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Append writes one path per line and syncs before returning, so a recorded
// decision survives a crash that happens before the entry is removed from
// the store.
func (l *Log) Append(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open drop log: %w", err)
	}
	defer file.Close()

	for _, path := range paths {
		if _, err := fmt.Fprintln(file, path); err != nil {
			return fmt.Errorf("append to drop log: %w", err)
		}
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync drop log: %w", err)
	}
	return file.Close()
}
