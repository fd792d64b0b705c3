// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/verte-zerg/typefast/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrClosed is returned by operations on a store whose connection was closed.
var ErrClosed = errors.New("store: connection is closed")

// Store wraps SQLite access for game records.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the SQLite database at path. The schema is not
// touched; call EnsureSchema before use.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on ping failure.
			_ = cerr
		}
		return nil, fmt.Errorf("could not open connection: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database. Closing twice returns ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("could not close connection: %w", err)
	}
	return nil
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

// EnsureSchema creates the records table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	stmt := `CREATE TABLE IF NOT EXISTS records (
		id INTEGER NOT NULL PRIMARY KEY,
		wpm INTEGER NOT NULL,
		cpm INTEGER NOT NULL,
		date TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("could not create records table: %w", err)
	}
	return nil
}

// Insert stores a single game result.
func (s *Store) Insert(ctx context.Context, wpm, cpm int, date string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO records (wpm, cpm, date) VALUES (?, ?, ?)`,
		wpm, cpm, date,
	); err != nil {
		return fmt.Errorf("could not insert record: %w", err)
	}
	return nil
}

// SelectAll returns every record in insertion order.
func (s *Store) SelectAll(ctx context.Context) ([]model.Record, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, wpm, cpm, date FROM records ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("could not select records: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.ID, &r.WPM, &r.CPM, &r.Date); err != nil {
			return nil, fmt.Errorf("could not scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not select records: %w", err)
	}
	return records, nil
}

// DropAll removes every stored record.
func (s *Store) DropAll(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("could not drop records: %w", err)
	}
	return nil
}
