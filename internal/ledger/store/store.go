// Package store persists channel-scoped ledger snapshots. Backends store an
// opaque serialized snapshot per channel; interpretation of the bytes belongs
// to the ledger itself so every backend preserves identical read contracts.
package store

import (
	"context"
	"errors"
	"regexp"
)

// Store is the persistence contract for ledger snapshots. One snapshot per
// channel; Save replaces the previous snapshot wholesale.
type Store interface {
	// Load returns the stored snapshot for channel, or (nil, nil) when the
	// channel has no snapshot yet.
	Load(ctx context.Context, channel string) ([]byte, error)
	// Save replaces the snapshot for channel.
	Save(ctx context.Context, channel string, data []byte) error
	Close() error
}

var channelRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ErrInvalidChannel rejects channel identifiers that could not safely be used
// as storage keys or path components.
var ErrInvalidChannel = errors.New("invalid channel identifier")

// ValidateChannel enforces the channel identifier charset shared by all backends.
func ValidateChannel(channel string) error {
	if !channelRe.MatchString(channel) {
		return ErrInvalidChannel
	}
	return nil
}
