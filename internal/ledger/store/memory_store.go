package store

import (
	"context"
	"sync"
)

// MemoryStore is a test backend; snapshots live in a process-local map.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, channel string) ([]byte, error) {
	if err := ValidateChannel(channel); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.snapshots[channel]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, channel string, data []byte) error {
	if err := ValidateChannel(channel); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.snapshots[channel] = buf
	return nil
}

func (s *MemoryStore) Close() error { return nil }
