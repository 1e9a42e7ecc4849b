package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by stores when a record does not exist for the
// requesting user.
var ErrNotFound = errors.New("record not found")

const UsersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	);
`

const TasksSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL REFERENCES users(id),
		title               TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		project             TEXT NOT NULL DEFAULT 'No Project',
		completed           INTEGER NOT NULL DEFAULT 0,
		completed_at        TEXT,
		estimated_pomodoros INTEGER NOT NULL DEFAULT 1,
		completed_pomodoros INTEGER NOT NULL DEFAULT 0,
		priority            TEXT NOT NULL DEFAULT 'medium',
		due_date            TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_user_created ON tasks(user_id, created_at);
`

const TimerSessionsSchema = `
	CREATE TABLE IF NOT EXISTS timer_sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id),
		task_id    TEXT REFERENCES tasks(id),
		type       TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		duration   INTEGER NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_user_completed_start
		ON timer_sessions(user_id, completed, start_time);
`

const SettingsSchema = `
	CREATE TABLE IF NOT EXISTS settings (
		user_id    TEXT PRIMARY KEY REFERENCES users(id),
		document   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
`

var bootQueries = []string{
	UsersSchema,
	TasksSchema,
	TimerSessionsSchema,
	SettingsSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the SQLite database and applies the boot schema.
// Timestamps are stored as RFC 3339 UTC text; comparisons in queries rely
// on that encoding being lexicographically ordered.
func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(settings.DbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("boot schema: %w", err)
		}
	}

	return db, nil
}

// EncodeTime renders a timestamp the way every store column expects it.
func EncodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func DecodeTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func EncodeNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: EncodeTime(*t), Valid: true}
}

func DecodeNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := DecodeTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
