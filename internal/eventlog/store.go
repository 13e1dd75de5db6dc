// Package eventlog records generation history: one entry per splash screen
// attempt and one per finished run. Logging is opt-in and best-effort.
package eventlog

import (
	"fmt"
	"path/filepath"

	"github.com/Mavwarf/splashgen/internal/paths"
	"github.com/Mavwarf/splashgen/internal/runner"
)

// Store abstracts history storage. FileStore keeps a flat log file,
// SQLiteStore a database in the same directory.
type Store interface {
	// Write
	LogResult(r runner.Result) error
	LogRun(s runner.Summary) error

	// Read
	Entries(limit int) ([]Entry, error) // oldest first, limit <= 0 = all

	// Maintenance
	Clear() error
	Close() error

	// Metadata
	Path() string
}

// Open returns the store for backend ("file" or "sqlite") rooted in dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(filepath.Join(dir, paths.LogFileName)), nil
	case "sqlite":
		s, err := NewSQLiteStore(filepath.Join(dir, paths.DBFileName))
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// OpenDefault opens backend in paths.DataDir().
func OpenDefault(backend string) (Store, error) {
	return Open(backend, paths.DataDir())
}
