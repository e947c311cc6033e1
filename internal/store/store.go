// Package store provides the string-keyed durable stores outings are kept in.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/faizmokh/salidas/internal/files"
)

// ErrCorrupt reports a backing file whose contents cannot be parsed. Writes
// replace such a file instead of failing.
var ErrCorrupt = errors.New("store corrupt")

// Store is a minimal string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the backend named by kind, rooted in the manager's data directory.
func Open(kind string, manager *files.Manager) (Store, error) {
	switch kind {
	case "", BackendFile:
		return NewFileStore(manager.StorePath()), nil
	case BackendSQLite:
		return OpenSQLite(manager.DBPath())
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected %s|%s)", kind, BackendFile, BackendSQLite)
	}
}
