// Package store persists the roll log and preset book in SQLite so a
// session can pick up where the last one left off.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/nathoo/dicepool/types"
)

// Store is a SQLite-backed roll log and preset store.
type Store struct {
	db  *sql.DB
	cap int
}

// Open opens/creates a SQLite database at path and runs migrations.
// The roll log keeps at most logCap entries.
func Open(ctx context.Context, path string, logCap int) (*Store, error) {
	if logCap <= 0 {
		return nil, fmt.Errorf("log cap must be positive, got %d", logCap)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating directory for %s: %w", path, err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite is not concurrent for writes
	s := &Store{db: db, cap: logCap}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS roll_log (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			timestamp TEXT NOT NULL,
			is_success INTEGER NOT NULL,
			final_total INTEGER NOT NULL,
			target INTEGER NOT NULL,
			roll_type TEXT NOT NULL,
			rolls TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS presets (
			position INTEGER NOT NULL,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			state TEXT NOT NULL
		);`,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// AppendRoll stores a log entry and drops the oldest entries beyond the cap.
func (s *Store) AppendRoll(ctx context.Context, e types.LogEntry) error {
	rolls, err := json.Marshal(e.Rolls)
	if err != nil {
		return fmt.Errorf("encoding rolls: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO roll_log(id, timestamp, is_success, final_total, target, roll_type, rolls)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Timestamp, e.IsSuccess, e.FinalTotal, e.Target, string(e.RollType), string(rolls)); err != nil {
		tx.Rollback()
		return fmt.Errorf("inserting roll %s: %w", e.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM roll_log
		WHERE seq NOT IN (SELECT seq FROM roll_log ORDER BY seq DESC LIMIT ?)`, s.cap); err != nil {
		tx.Rollback()
		return fmt.Errorf("trimming roll log: %w", err)
	}
	return tx.Commit()
}

// RecentRolls returns up to limit entries, newest first.
func (s *Store) RecentRolls(ctx context.Context, limit int) ([]types.LogEntry, error) {
	if limit <= 0 || limit > s.cap {
		limit = s.cap
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, is_success, final_total, target, roll_type, rolls
		FROM roll_log
		ORDER BY seq DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []types.LogEntry{}
	for rows.Next() {
		var (
			e        types.LogEntry
			rollType string
			rolls    string
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.IsSuccess, &e.FinalTotal, &e.Target, &rollType, &rolls); err != nil {
			return nil, err
		}
		e.RollType = types.RollType(rollType)
		if err := json.Unmarshal([]byte(rolls), &e.Rolls); err != nil {
			return nil, fmt.Errorf("decoding rolls of %s: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ClearRolls deletes the whole roll log.
func (s *Store) ClearRolls(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM roll_log`)
	return err
}

// SavePresets replaces the stored preset book with presets, keeping order.
func (s *Store) SavePresets(ctx context.Context, presets []types.Preset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM presets`); err != nil {
		tx.Rollback()
		return err
	}
	for i, p := range presets {
		st, err := json.Marshal(p.State)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encoding preset %s: %w", p.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO presets(position, id, name, state) VALUES (?, ?, ?, ?)`,
			i, p.ID, p.Name, string(st)); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting preset %s: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// LoadPresets returns the stored presets in order.
func (s *Store) LoadPresets(ctx context.Context) ([]types.Preset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, state FROM presets ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []types.Preset{}
	for rows.Next() {
		var (
			p  types.Preset
			st string
		)
		if err := rows.Scan(&p.ID, &p.Name, &st); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(st), &p.State); err != nil {
			return nil, fmt.Errorf("decoding preset %s: %w", p.Name, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
