package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/hyelim-oh/lingoreel/internal/fsutil"
	"github.com/hyelim-oh/lingoreel/internal/log"
)

// FileStore keeps one JSON snapshot file per channel under a data directory:
// <dataDir>/channels/<channel>/expressions.json. Writes are atomic and
// durable: fsync before rename prevents data loss on power failure.
type FileStore struct {
	root string
}

// NewFileStore creates the data directory if needed and returns a FileStore.
func NewFileStore(dataDir string) (*FileStore, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("file store requires a data directory")
	}
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	root, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Path resolves the snapshot path for channel, confined to the data directory.
func (s *FileStore) Path(channel string) (string, error) {
	if err := ValidateChannel(channel); err != nil {
		return "", err
	}
	return fsutil.ConfineRelPath(s.root, filepath.Join("channels", channel, "expressions.json"))
}

func (s *FileStore) Load(ctx context.Context, channel string) ([]byte, error) {
	path, err := s.Path(channel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger snapshot: %w", err)
	}
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, channel string, data []byte) error {
	logger := log.WithComponentFromContext(ctx, "ledger-store")

	path, err := s.Path(channel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create channel directory: %w", err)
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending ledger file: %w", err)
	}
	defer func() {
		// Cleanup on error - renameio removes temp file if not committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending ledger file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write ledger snapshot: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace ledger file: %w", err)
	}

	return nil
}

func (s *FileStore) Close() error { return nil }
