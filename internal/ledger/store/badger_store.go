package store

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps ledger snapshots in a transactional key-value store,
// one key per channel ("ledger:<channel>"). It serves deployments where the
// whole-file rewrite of FileStore is replaced by a transactional backend while
// preserving the same read contracts.
type BadgerStore struct {
	db *badger.DB
}

func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func badgerKey(channel string) []byte {
	return []byte("ledger:" + channel)
}

func (s *BadgerStore) Load(ctx context.Context, channel string) ([]byte, error) {
	if err := ValidateChannel(channel); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(channel))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BadgerStore) Save(ctx context.Context, channel string, data []byte) error {
	if err := ValidateChannel(channel); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(channel), data)
	})
}

func (s *BadgerStore) Close() error { return s.db.Close() }
