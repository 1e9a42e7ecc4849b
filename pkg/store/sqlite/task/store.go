package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
)

type Store interface {
	Create(ctx context.Context, t store.Task) error
	Get(ctx context.Context, id, userID string) (*store.Task, error)
	List(ctx context.Context, filter store.TaskFilter) ([]store.Task, error)
	Update(ctx context.Context, t store.Task) error
	Delete(ctx context.Context, id, userID string) error
	Rollup(ctx context.Context, userID string, since *time.Time) (*store.TaskRollup, error)
	ProjectRollups(ctx context.Context, userID string, since *time.Time) ([]store.ProjectRollup, error)
}

type taskStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &taskStore{db: db}, nil
}

func (s *taskStore) Create(ctx context.Context, t store.Task) error {
	completed := 0
	if t.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, user_id, title, description, project, completed, completed_at,
			estimated_pomodoros, completed_pomodoros, priority, due_date,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.Project,
		completed,
		sqlite.EncodeNullTime(t.CompletedAt),
		t.EstimatedPomodoros,
		t.CompletedPomodoros,
		t.Priority,
		sqlite.EncodeNullTime(t.DueDate),
		sqlite.EncodeTime(t.CreatedAt),
		sqlite.EncodeTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *taskStore) Get(ctx context.Context, id, userID string) (*store.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, project, completed, completed_at,
		       estimated_pomodoros, completed_pomodoros, priority, due_date,
		       created_at, updated_at
		FROM tasks WHERE id = ? AND user_id = ?`, id, userID)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sqlite.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *taskStore) List(ctx context.Context, filter store.TaskFilter) ([]store.Task, error) {
	query := `
		SELECT id, user_id, title, description, project, completed, completed_at,
		       estimated_pomodoros, completed_pomodoros, priority, due_date,
		       created_at, updated_at
		FROM tasks WHERE user_id = ?`
	args := []interface{}{filter.UserID}

	if filter.Completed != nil {
		completed := 0
		if *filter.Completed {
			completed = 1
		}
		query += " AND completed = ?"
		args = append(args, completed)
	}
	if filter.Project != "" {
		query += " AND project = ?"
		args = append(args, filter.Project)
	}
	if filter.Priority != "" {
		query += " AND priority = ?"
		args = append(args, filter.Priority)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]store.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (s *taskStore) Update(ctx context.Context, t store.Task) error {
	completed := 0
	if t.Completed {
		completed = 1
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?, description = ?, project = ?, completed = ?, completed_at = ?,
			estimated_pomodoros = ?, completed_pomodoros = ?, priority = ?, due_date = ?,
			updated_at = ?
		WHERE id = ? AND user_id = ?`,
		t.Title,
		t.Description,
		t.Project,
		completed,
		sqlite.EncodeNullTime(t.CompletedAt),
		t.EstimatedPomodoros,
		t.CompletedPomodoros,
		t.Priority,
		sqlite.EncodeNullTime(t.DueDate),
		sqlite.EncodeTime(t.UpdatedAt),
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		return sqlite.ErrNotFound
	}
	return nil
}

func (s *taskStore) Delete(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return sqlite.ErrNotFound
	}
	return nil
}

// Rollup aggregates the user's tasks; a nil since spans all time. The
// COALESCE keeps an empty match reporting zeros instead of NULLs.
func (s *taskStore) Rollup(ctx context.Context, userID string, since *time.Time) (*store.TaskRollup, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(completed), 0),
		       COALESCE(SUM(estimated_pomodoros), 0),
		       COALESCE(SUM(completed_pomodoros), 0)
		FROM tasks WHERE user_id = ?`
	args := []interface{}{userID}
	if since != nil {
		query += " AND created_at >= ?"
		args = append(args, sqlite.EncodeTime(*since))
	}

	var r store.TaskRollup
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&r.TotalTasks, &r.CompletedTasks, &r.TotalPomodoros, &r.CompletedPomodoros)
	if err != nil {
		return nil, fmt.Errorf("task rollup: %w", err)
	}
	return &r, nil
}

func (s *taskStore) ProjectRollups(ctx context.Context, userID string, since *time.Time) ([]store.ProjectRollup, error) {
	query := `
		SELECT project, COUNT(*) AS task_count,
		       COALESCE(SUM(completed), 0),
		       COALESCE(SUM(estimated_pomodoros), 0),
		       COALESCE(SUM(completed_pomodoros), 0)
		FROM tasks WHERE user_id = ?`
	args := []interface{}{userID}
	if since != nil {
		query += " AND created_at >= ?"
		args = append(args, sqlite.EncodeTime(*since))
	}
	query += " GROUP BY project ORDER BY task_count DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("project rollups: %w", err)
	}
	defer rows.Close()

	rollups := make([]store.ProjectRollup, 0)
	for rows.Next() {
		var r store.ProjectRollup
		if err := rows.Scan(&r.Project, &r.Count, &r.Completed, &r.TotalPomodoros, &r.CompletedPomodoros); err != nil {
			return nil, err
		}
		rollups = append(rollups, r)
	}
	return rollups, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row scanner) (*store.Task, error) {
	var (
		t                  store.Task
		completed          int
		completedAt        sql.NullString
		dueDate            sql.NullString
		createdAt, updated string
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Project,
		&completed, &completedAt, &t.EstimatedPomodoros, &t.CompletedPomodoros,
		&t.Priority, &dueDate, &createdAt, &updated)
	if err != nil {
		return nil, err
	}

	t.Completed = completed == 1
	if t.CompletedAt, err = sqlite.DecodeNullTime(completedAt); err != nil {
		return nil, fmt.Errorf("decode completed_at: %w", err)
	}
	if t.DueDate, err = sqlite.DecodeNullTime(dueDate); err != nil {
		return nil, fmt.Errorf("decode due_date: %w", err)
	}
	if t.CreatedAt, err = sqlite.DecodeTime(createdAt); err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}
	if t.UpdatedAt, err = sqlite.DecodeTime(updated); err != nil {
		return nil, fmt.Errorf("decode updated_at: %w", err)
	}
	return &t, nil
}
