package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/splashgen/internal/paths"
	"github.com/Mavwarf/splashgen/internal/runner"
)

// FileStore implements Store using a flat log file. Each run is a block of
// result lines closed by a run line and a blank line.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// openLog opens (or creates) the log file for appending, creating the
// parent directory if needed.
func (f *FileStore) openLog() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
}

// writeLog opens the log file and writes text to it.
func (f *FileStore) writeLog(text string) error {
	file, err := f.openLog()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(file, text); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (f *FileStore) LogResult(r runner.Result) error {
	return f.writeLog(FormatLine(resultEntry(time.Now(), r)) + "\n")
}

func (f *FileStore) LogRun(s runner.Summary) error {
	return f.writeLog(FormatLine(runEntry(time.Now(), s)) + "\n\n")
}

func (f *FileStore) Entries(limit int) ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	entries := ParseEntries(string(data))
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op; the file is opened per write.
func (f *FileStore) Close() error { return nil }

func (f *FileStore) Path() string {
	return f.path
}
