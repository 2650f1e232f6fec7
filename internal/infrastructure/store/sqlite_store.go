package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "modernc.org/sqlite"

	"stayhub/internal/domain/contract"
	usecasecontract "stayhub/internal/usecase/contract"
)

// SQLiteStore keeps every blob as a row in a local kv table. Useful
// when persistence is wanted without an external service.
type SQLiteStore struct {
	db     *sql.DB
	logger usecasecontract.IAppLogger
}

var _ contract.KVStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database file and bootstraps
// the kv table.
func NewSQLiteStore(path string, logger usecasecontract.IAppLogger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string, dest interface{}) bool {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Errorf("sqlite store: reading %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		s.logger.Errorf("sqlite store: decoding %s: %v", key, err)
		return false
	}
	return true
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Errorf("sqlite store: encoding %s: %v", key, err)
		return false
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	if err != nil {
		s.logger.Errorf("sqlite store: writing %s: %v", key, err)
		return false
	}
	return true
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) bool {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.logger.Errorf("sqlite store: removing %s: %v", key, err)
		return false
	}
	return true
}

func (s *SQLiteStore) Clear(ctx context.Context) bool {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		s.logger.Errorf("sqlite store: clearing: %v", err)
		return false
	}
	return true
}
