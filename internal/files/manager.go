package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// File names inside the data directory.
const (
	ConfigFileName = "config.yaml"
	StoreFileName  = "store.json"
	DBFileName     = "salidas.db"
	LogFileName    = "salidas.log"
)

// Manager centralizes where salidas keeps its files on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.salidas (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all salidas files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// Path joins name onto the base directory. The file may not exist yet.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.basePath, name)
}

// ConfigPath is where config.yaml is read from.
func (m *Manager) ConfigPath() string { return m.Path(ConfigFileName) }

// StorePath is the JSON key-value file used by the file store backend.
func (m *Manager) StorePath() string { return m.Path(StoreFileName) }

// DBPath is the SQLite database used by the sqlite store backend.
func (m *Manager) DBPath() string { return m.Path(DBFileName) }

// LogPath is the structured log file.
func (m *Manager) LogPath() string { return m.Path(LogFileName) }

// EnsureBase guarantees the data directory exists.
func (m *Manager) EnsureBase() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// WriteFileAtomic replaces path with data by writing a sibling temp file and
// renaming it over the target. Existing permissions are preserved.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "salidas-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
