// Package store persists submitted contact drafts to a local sqlite journal.
// The journal is opt-in and append-only; the form's simulated send cycle is
// the contract and does not depend on (or fail with) the journal.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Lead is one recorded submission.
type Lead struct {
	ID        int64
	Name      string
	Email     string
	Company   string
	Goal      string
	Message   string
	CreatedAt time.Time
}

type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal at path.
func Open(ctx context.Context, path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("leads journal dir: %w", err)
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open leads journal: %w", err)
	}
	// WAL + busy_timeout so a concurrent `northlight leads` read doesn't
	// trip over the running TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("leads journal pragma: %w", err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	const schema = `CREATE TABLE IF NOT EXISTS leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		goal TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate leads journal: %w", err)
	}
	return nil
}

// Append records one submission.
func (j *Journal) Append(ctx context.Context, l Lead) error {
	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO leads (name, email, company, goal, message, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		l.Name, l.Email, l.Company, l.Goal, l.Message, createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append lead: %w", err)
	}
	return nil
}

// List returns all recorded leads, oldest first.
func (j *Journal) List(ctx context.Context) ([]Lead, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, name, email, company, goal, message, created_at FROM leads ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		var created string
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Company, &l.Goal, &l.Message, &created); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			l.CreatedAt = ts
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
