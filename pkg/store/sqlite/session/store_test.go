package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	userstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedUser(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	users, err := userstore.NewStore(db)
	require.NoError(t, err)
	err = users.Create(context.Background(), store.User{
		ID:           id,
		Username:     "user-" + id,
		Email:        id + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
}

func completedSession(id, userID, sessType string, start time.Time, elapsed time.Duration, planned int) store.TimerSession {
	end := start.Add(elapsed)
	return store.TimerSession{
		ID:        id,
		UserID:    userID,
		Type:      sessType,
		StartTime: start,
		EndTime:   &end,
		Duration:  planned,
		Completed: true,
	}
}

func TestStore_TypeStats(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")
	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	start := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Add(ctx, completedSession("s1", "u1", domain.SessionPomodoro, start, 25*time.Minute, 25)))
	require.NoError(t, s.Add(ctx, completedSession("s2", "u1", domain.SessionPomodoro, start.Add(time.Hour), 30*time.Minute, 25)))
	require.NoError(t, s.Add(ctx, completedSession("s3", "u1", domain.SessionShortBreak, start.Add(2*time.Hour), 5*time.Minute, 5)))
	// Incomplete runs never reach the aggregates.
	require.NoError(t, s.Add(ctx, store.TimerSession{
		ID: "s4", UserID: "u1", Type: domain.SessionPomodoro,
		StartTime: start.Add(3 * time.Hour), Duration: 25,
	}))

	stats, err := s.TypeStats(ctx, "u1", start.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byType := map[string]store.TypeStats{}
	for _, st := range stats {
		byType[st.Type] = st
	}
	require.Contains(t, byType, domain.SessionPomodoro)
	assert.Equal(t, 2, byType[domain.SessionPomodoro].Count)
	assert.Equal(t, 50, byType[domain.SessionPomodoro].TotalDuration)
	assert.InDelta(t, 55, byType[domain.SessionPomodoro].TotalActualMinutes, 0.01)
	assert.Equal(t, 1, byType[domain.SessionShortBreak].Count)
}

func TestStore_TypeStats_WindowExcludesOlderSessions(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")
	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	since := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Add(ctx, completedSession("old", "u1", domain.SessionPomodoro, since.AddDate(0, 0, -2), 25*time.Minute, 25)))
	require.NoError(t, s.Add(ctx, completedSession("new", "u1", domain.SessionPomodoro, since.AddDate(0, 0, 2), 25*time.Minute, 25)))

	stats, err := s.TypeStats(ctx, "u1", since)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Count)
}

func TestStore_DailyFocus(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")
	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	day1 := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Add(ctx, completedSession("s1", "u1", domain.SessionPomodoro, day1, 30*time.Minute, 25)))
	require.NoError(t, s.Add(ctx, completedSession("s2", "u1", domain.SessionPomodoro, day2, 30*time.Minute, 25)))
	require.NoError(t, s.Add(ctx, completedSession("s3", "u1", domain.SessionPomodoro, day2.Add(time.Hour), 30*time.Minute, 25)))
	// Breaks contribute nothing to focus days.
	require.NoError(t, s.Add(ctx, completedSession("s4", "u1", domain.SessionShortBreak, day2, 5*time.Minute, 5)))

	days, err := s.DailyFocus(ctx, "u1", day1.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "2025-03-14", days[0].Date)
	assert.InDelta(t, 0.5, days[0].FocusHours, 0.001)
	assert.Equal(t, 1, days[0].Sessions)

	assert.Equal(t, "2025-03-15", days[1].Date)
	assert.InDelta(t, 1.0, days[1].FocusHours, 0.001)
	assert.Equal(t, 2, days[1].Sessions)
}

func TestStore_ActiveDays(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")
	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		start := time.Date(2025, 3, 10+i, 9, 0, 0, 0, time.UTC)
		require.NoError(t, s.Add(ctx, completedSession("s"+string(rune('a'+i)), "u1", domain.SessionPomodoro, start, 25*time.Minute, 25)))
	}

	days, err := s.ActiveDays(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, days, 3)

	// Most recent first so the streak walk can start at today.
	assert.Equal(t, "2025-03-14", days[0].Date)
	assert.Equal(t, "2025-03-13", days[1].Date)
	assert.Equal(t, "2025-03-12", days[2].Date)
}

func TestStore_FocusTotals(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	seedUser(t, db, "u3")
	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	start := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Add(ctx, completedSession("a1", "u1", domain.SessionPomodoro, start, 25*time.Minute, 25)))
	require.NoError(t, s.Add(ctx, completedSession("b1", "u2", domain.SessionPomodoro, start, 50*time.Minute, 50)))
	require.NoError(t, s.Add(ctx, completedSession("b2", "u2", domain.SessionPomodoro, start.Add(time.Hour), 50*time.Minute, 50)))
	// Breaks and incomplete runs keep a user off the board.
	require.NoError(t, s.Add(ctx, completedSession("c1", "u3", domain.SessionLongBreak, start, 15*time.Minute, 15)))

	totals, err := s.FocusTotals(ctx, start.Add(-time.Hour), 50)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "u2", totals[0].UserID)
	assert.InDelta(t, 100, totals[0].TotalMinutes, 0.01)
	assert.Equal(t, "u1", totals[1].UserID)
	assert.InDelta(t, 25, totals[1].TotalMinutes, 0.01)
}

func TestStore_ListCompleted(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")
	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	start := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Add(ctx, completedSession("s1", "u1", domain.SessionPomodoro, start, 25*time.Minute, 25)))
	require.NoError(t, s.Add(ctx, completedSession("s2", "u1", domain.SessionShortBreak, start.Add(30*time.Minute), 5*time.Minute, 5)))
	require.NoError(t, s.Add(ctx, completedSession("s3", "u1", domain.SessionPomodoro, start.Add(time.Hour), 25*time.Minute, 25)))

	sessions, err := s.ListCompleted(ctx, store.SessionFilter{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	// Newest first.
	assert.Equal(t, "s3", sessions[0].ID)
	assert.Equal(t, "s1", sessions[2].ID)

	pomodoros, err := s.ListCompleted(ctx, store.SessionFilter{UserID: "u1", Type: domain.SessionPomodoro, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, pomodoros, 2)

	total, err := s.CountCompleted(ctx, store.SessionFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	page, err := s.ListCompleted(ctx, store.SessionFilter{UserID: "u1", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "s1", page[0].ID)
}

func TestStore_Complete(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "u1")
	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	start := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Add(ctx, store.TimerSession{
		ID: "s1", UserID: "u1", Type: domain.SessionPomodoro, StartTime: start, Duration: 25,
	}))

	require.NoError(t, s.Complete(ctx, "s1", "u1", start.Add(25*time.Minute)))

	sessions, err := s.ListCompleted(ctx, store.SessionFilter{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Completed)
	require.NotNil(t, sessions[0].EndTime)

	err = s.Complete(ctx, "missing", "u1", start)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)

	// A foreign user cannot complete someone else's session.
	seedUser(t, db, "u2")
	err = s.Complete(ctx, "s1", "u2", start)
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}
