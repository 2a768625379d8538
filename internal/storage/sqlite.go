package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"taskbot/internal/task"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY,
	type        TEXT    NOT NULL,
	description TEXT    NOT NULL,
	done        INTEGER NOT NULL DEFAULT 0,
	due         TEXT,
	due_raw     INTEGER NOT NULL DEFAULT 0,
	from_day    TEXT,
	to_day      TEXT
);`

// SQLiteStore persists tasks in a SQLite database. Save replaces the whole
// table in one transaction, preserving the overwrite semantics of the file
// store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, tasks []task.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, type, description, done, due, due_raw, from_day, to_day)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range Encode(tasks) {
		if _, err := stmt.ExecContext(ctx, i, r.Type, r.Description, r.Done, r.Due, r.DueRaw, r.From, r.To); err != nil {
			return fmt.Errorf("insert task %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type, description, done, due, due_raw, from_day, to_day
		FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var due, from, to sql.NullString
		if err := rows.Scan(&r.Type, &r.Description, &r.Done, &due, &r.DueRaw, &from, &to); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		r.Due = due.String
		r.From = from.String
		r.To = to.String
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return Decode(records)
}

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }
