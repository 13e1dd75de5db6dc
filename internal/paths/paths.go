package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "splashgen"
	ConfigFileName = "splash-config.json"
	LogFileName    = "splashgen.log"
	DBFileName     = "splashgen.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// EnsureDir creates dir and any missing parents. Existing directories are
// left untouched.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed. An existing
// file at path is replaced.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for splashgen:
//   - Windows: %APPDATA%\splashgen
//   - Unix:    ~/.config/splashgen
//
// Falls back to os.TempDir()/splashgen if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}
