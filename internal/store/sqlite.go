package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gavdaly/kantui/internal/board"
)

const schema = `
CREATE TABLE IF NOT EXISTS archive (
	id TEXT PRIMARY KEY,
	column_heading TEXT NOT NULL,
	status TEXT NOT NULL,
	card_text TEXT NOT NULL,
	card_date TEXT NOT NULL DEFAULT '',
	card_time TEXT NOT NULL DEFAULT '',
	archived_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_archive_column ON archive(column_heading);
CREATE INDEX IF NOT EXISTS idx_archive_time ON archive(archived_at);
`

// SQLiteArchive stores archived cards in a SQLite database file.
type SQLiteArchive struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database at path. The
// parent directory is created when missing.
func Open(path string) (*SQLiteArchive, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize archive schema: %w", err)
	}
	return &SQLiteArchive{db: db}, nil
}

func (s *SQLiteArchive) Put(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("entry ID is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO archive (id, column_heading, status, card_text, card_date, card_time, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Column, entry.Status.String(), entry.Text,
		entry.Date, entry.Time, entry.ArchivedAt)
	return err
}

func (s *SQLiteArchive) PutBatch(ctx context.Context, entries []*Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO archive (id, column_heading, status, card_text, card_date, card_time, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	stored := 0
	for _, entry := range entries {
		if entry.ID == "" {
			return stored, fmt.Errorf("entry ID is required")
		}
		if _, err := stmt.ExecContext(ctx,
			entry.ID, entry.Column, entry.Status.String(), entry.Text,
			entry.Date, entry.Time, entry.ArchivedAt); err != nil {
			return stored, err
		}
		stored++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return stored, nil
}

func (s *SQLiteArchive) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	query := `SELECT id, column_heading, status, card_text, card_date, card_time, archived_at
		FROM archive`
	args := []any{}
	if filter.Column != "" {
		query += ` WHERE column_heading = ?`
		args = append(args, filter.Column)
	}
	query += ` ORDER BY archived_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		var entry Entry
		var status string
		if err := rows.Scan(&entry.ID, &entry.Column, &status, &entry.Text,
			&entry.Date, &entry.Time, &entry.ArchivedAt); err != nil {
			return nil, err
		}
		st, err := board.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ID, err)
		}
		entry.Status = st
		out = append(out, &entry)
	}
	return out, rows.Err()
}

func (s *SQLiteArchive) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM archive WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("entry %s not found", id)
	}
	return nil
}

func (s *SQLiteArchive) Close() error {
	return s.db.Close()
}
