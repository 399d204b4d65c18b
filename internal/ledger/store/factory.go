package store

import (
	"fmt"
	"path/filepath"
)

// Open creates a Store based on the backend configuration.
func Open(backend, dataDir string) (Store, error) {
	if backend == "" {
		backend = "file"
	}

	switch backend {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(dataDir)
	case "badger":
		return OpenBadgerStore(filepath.Join(dataDir, "badger"))
	case "sqlite":
		return OpenSqliteStore(filepath.Join(dataDir, "ledger.db"))
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
