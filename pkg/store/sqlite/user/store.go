package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
)

type Store interface {
	Create(ctx context.Context, u store.User) error
	GetByID(ctx context.Context, id string) (*store.User, error)
	GetByUsername(ctx context.Context, username string) (*store.User, error)
	// GetByIDs batch-fetches identities; ids with no matching user are
	// silently absent from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]store.User, error)
}

type userStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &userStore{db: db}, nil
}

func (s *userStore) Create(ctx context.Context, u store.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, sqlite.EncodeTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (*store.User, error) {
	return s.getOne(ctx, "id = ?", id)
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*store.User, error) {
	return s.getOne(ctx, "username = ?", username)
}

func (s *userStore) getOne(ctx context.Context, where string, arg interface{}) (*store.User, error) {
	var (
		u         store.User
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, created_at FROM users WHERE "+where, arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sqlite.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.CreatedAt, err = sqlite.DecodeTime(createdAt); err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}
	return &u, nil
}

func (s *userStore) GetByIDs(ctx context.Context, ids []string) (map[string]store.User, error) {
	if len(ids) == 0 {
		return map[string]store.User{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT id, username, email, password_hash, created_at FROM users WHERE id IN (%s)",
		strings.Join(placeholders, ","),
	)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users by ids: %w", err)
	}
	defer rows.Close()

	users := make(map[string]store.User, len(ids))
	for rows.Next() {
		var (
			u         store.User
			createdAt string
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt); err != nil {
			return nil, err
		}
		if u.CreatedAt, err = sqlite.DecodeTime(createdAt); err != nil {
			return nil, fmt.Errorf("decode created_at: %w", err)
		}
		users[u.ID] = u
	}
	return users, rows.Err()
}
