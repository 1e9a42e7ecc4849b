package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
)

type Store interface {
	Get(ctx context.Context, userID string) (*store.Settings, error)
	Save(ctx context.Context, s store.Settings) error
	Delete(ctx context.Context, userID string) error
}

type settingsStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &settingsStore{db: db}, nil
}

func (s *settingsStore) Get(ctx context.Context, userID string) (*store.Settings, error) {
	var (
		rec       store.Settings
		updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, document, updated_at FROM settings WHERE user_id = ?", userID,
	).Scan(&rec.UserID, &rec.Document, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sqlite.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if rec.UpdatedAt, err = sqlite.DecodeTime(updatedAt); err != nil {
		return nil, fmt.Errorf("decode updated_at: %w", err)
	}
	return &rec, nil
}

func (s *settingsStore) Save(ctx context.Context, rec store.Settings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (user_id, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		rec.UserID, rec.Document, sqlite.EncodeTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *settingsStore) Delete(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
