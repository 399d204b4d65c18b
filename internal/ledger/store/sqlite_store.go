package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go driver
)

// SqliteStore keeps ledger snapshots in a single-row-per-channel table.
type SqliteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
	channel    TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// OpenSqliteStore initializes a SQLite connection with mandatory PRAGMAs.
// WAL mode and busy_timeout apply to all connections via the DSN.
func OpenSqliteStore(dbPath string) (*SqliteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		dbPath, (5 * time.Second).Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open failed: %w", err)
	}

	// One writer per channel by contract; a single connection avoids
	// SQLITE_BUSY churn for this access pattern.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping failed: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Load(ctx context.Context, channel string) ([]byte, error) {
	if err := ValidateChannel(channel); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM ledger_snapshots WHERE channel = ?`, channel).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load snapshot: %w", err)
	}
	return data, nil
}

func (s *SqliteStore) Save(ctx context.Context, channel string, data []byte) error {
	if err := ValidateChannel(channel); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_snapshots (channel, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(channel) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		channel, data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("sqlite: save snapshot: %w", err)
	}
	return nil
}

func (s *SqliteStore) Close() error { return s.db.Close() }
