package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
)

// Store persists timer sessions and serves the read-side aggregates the
// report engine depends on. Every aggregate filters on completed = 1 and a
// non-null end_time; an incomplete run never reaches any sum.
type Store interface {
	Add(ctx context.Context, sess store.TimerSession) error
	Complete(ctx context.Context, id, userID string, endTime time.Time) error
	ListCompleted(ctx context.Context, filter store.SessionFilter) ([]store.TimerSession, error)
	CountCompleted(ctx context.Context, filter store.SessionFilter) (int, error)
	TypeStats(ctx context.Context, userID string, since time.Time) ([]store.TypeStats, error)
	DailyFocus(ctx context.Context, userID string, since time.Time) ([]store.DailyFocus, error)
	ActiveDays(ctx context.Context, userID string, limit int) ([]store.ActiveDay, error)
	FocusTotals(ctx context.Context, since time.Time, limit int) ([]store.UserFocus, error)
}

type sessionStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &sessionStore{db: db}, nil
}

func (s *sessionStore) Add(ctx context.Context, sess store.TimerSession) error {
	completed := 0
	if sess.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO timer_sessions (id, user_id, task_id, type, start_time, end_time, duration, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.UserID,
		sess.TaskID,
		sess.Type,
		sqlite.EncodeTime(sess.StartTime),
		sqlite.EncodeNullTime(sess.EndTime),
		sess.Duration,
		completed,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *sessionStore) Complete(ctx context.Context, id, userID string, endTime time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE timer_sessions SET completed = 1, end_time = ?
		WHERE id = ? AND user_id = ?`,
		sqlite.EncodeTime(endTime), id, userID,
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if affected == 0 {
		return sqlite.ErrNotFound
	}
	return nil
}

func (s *sessionStore) ListCompleted(ctx context.Context, filter store.SessionFilter) ([]store.TimerSession, error) {
	where, args := completedFilter(filter)
	query := fmt.Sprintf(`
		SELECT s.id, s.user_id, s.task_id, s.type, s.start_time, s.end_time,
		       s.duration, s.completed, t.title, t.project
		FROM timer_sessions s
		LEFT JOIN tasks t ON t.id = s.task_id
		%s
		ORDER BY s.start_time DESC
		LIMIT ? OFFSET ?`, where)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()
	return scanSessionRows(rows)
}

func (s *sessionStore) CountCompleted(ctx context.Context, filter store.SessionFilter) (int, error) {
	where, args := completedFilter(filter)
	var total int
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM timer_sessions s %s", where), args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return total, nil
}

func (s *sessionStore) TypeStats(ctx context.Context, userID string, since time.Time) ([]store.TypeStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type, COUNT(*),
		       COALESCE(SUM(duration), 0),
		       COALESCE(SUM((julianday(end_time) - julianday(start_time)) * 1440.0), 0)
		FROM timer_sessions
		WHERE user_id = ? AND completed = 1 AND end_time IS NOT NULL AND start_time >= ?
		GROUP BY type`,
		userID, sqlite.EncodeTime(since),
	)
	if err != nil {
		return nil, fmt.Errorf("query type stats: %w", err)
	}
	defer rows.Close()

	stats := make([]store.TypeStats, 0)
	for rows.Next() {
		var st store.TypeStats
		if err := rows.Scan(&st.Type, &st.Count, &st.TotalDuration, &st.TotalActualMinutes); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *sessionStore) DailyFocus(ctx context.Context, userID string, since time.Time) ([]store.DailyFocus, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT substr(start_time, 1, 10) AS day,
		       COALESCE(SUM((julianday(end_time) - julianday(start_time)) * 24.0), 0),
		       COUNT(*)
		FROM timer_sessions
		WHERE user_id = ? AND completed = 1 AND end_time IS NOT NULL
		      AND type = ? AND start_time >= ?
		GROUP BY day
		ORDER BY day ASC`,
		userID, domain.SessionPomodoro, sqlite.EncodeTime(since),
	)
	if err != nil {
		return nil, fmt.Errorf("query daily focus: %w", err)
	}
	defer rows.Close()

	days := make([]store.DailyFocus, 0)
	for rows.Next() {
		var d store.DailyFocus
		if err := rows.Scan(&d.Date, &d.FocusHours, &d.Sessions); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (s *sessionStore) ActiveDays(ctx context.Context, userID string, limit int) ([]store.ActiveDay, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT substr(start_time, 1, 10) AS day, COUNT(*)
		FROM timer_sessions
		WHERE user_id = ? AND completed = 1 AND end_time IS NOT NULL AND type = ?
		GROUP BY day
		ORDER BY day DESC
		LIMIT ?`,
		userID, domain.SessionPomodoro, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query active days: %w", err)
	}
	defer rows.Close()

	days := make([]store.ActiveDay, 0)
	for rows.Next() {
		var d store.ActiveDay
		if err := rows.Scan(&d.Date, &d.Sessions); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (s *sessionStore) FocusTotals(ctx context.Context, since time.Time, limit int) ([]store.UserFocus, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id,
		       SUM((julianday(end_time) - julianday(start_time)) * 1440.0) AS minutes
		FROM timer_sessions
		WHERE completed = 1 AND end_time IS NOT NULL AND type = ? AND start_time >= ?
		GROUP BY user_id
		ORDER BY minutes DESC
		LIMIT ?`,
		domain.SessionPomodoro, sqlite.EncodeTime(since), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query focus totals: %w", err)
	}
	defer rows.Close()

	totals := make([]store.UserFocus, 0)
	for rows.Next() {
		var uf store.UserFocus
		if err := rows.Scan(&uf.UserID, &uf.TotalMinutes); err != nil {
			return nil, err
		}
		totals = append(totals, uf)
	}
	return totals, rows.Err()
}

func completedFilter(filter store.SessionFilter) (string, []interface{}) {
	where := "WHERE s.user_id = ? AND s.completed = 1"
	args := []interface{}{filter.UserID}
	if filter.Type != "" {
		where += " AND s.type = ?"
		args = append(args, filter.Type)
	}
	if filter.StartDate != nil {
		where += " AND s.start_time >= ?"
		args = append(args, sqlite.EncodeTime(*filter.StartDate))
	}
	if filter.EndDate != nil {
		where += " AND s.start_time <= ?"
		args = append(args, sqlite.EncodeTime(*filter.EndDate))
	}
	return where, args
}

func scanSessionRows(rows *sql.Rows) ([]store.TimerSession, error) {
	sessions := make([]store.TimerSession, 0)
	for rows.Next() {
		var (
			sess                store.TimerSession
			taskID              sql.NullString
			startRaw            string
			endRaw              sql.NullString
			completed           int
			taskTitle, taskProj sql.NullString
		)
		err := rows.Scan(&sess.ID, &sess.UserID, &taskID, &sess.Type, &startRaw, &endRaw,
			&sess.Duration, &completed, &taskTitle, &taskProj)
		if err != nil {
			return nil, err
		}

		sess.StartTime, err = sqlite.DecodeTime(startRaw)
		if err != nil {
			return nil, fmt.Errorf("decode start_time: %w", err)
		}
		sess.EndTime, err = sqlite.DecodeNullTime(endRaw)
		if err != nil {
			return nil, fmt.Errorf("decode end_time: %w", err)
		}
		sess.Completed = completed == 1
		if taskID.Valid {
			sess.TaskID = &taskID.String
		}
		if taskTitle.Valid {
			sess.TaskTitle = &taskTitle.String
		}
		if taskProj.Valid {
			sess.TaskProject = &taskProj.String
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
