package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite/session"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite/task"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite/user"
	"golang.org/x/sync/errgroup"
)

const (
	streakLookbackDays = 30
	rankingLimit       = 50
	defaultDetailLimit = 20
	maxDetailLimit     = 100
)

// DetailFilter narrows the paginated session listing. Zero values mean
// "no filter" (and page/limit fall back to defaults).
type DetailFilter struct {
	Page      int
	Limit     int
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
}

// Engine computes activity reports. It is stateless and read-only over the
// stores; concurrent requests need no coordination.
type Engine interface {
	Summary(ctx context.Context, userID string, period Period) (*domain.Report, error)
	Detail(ctx context.Context, userID string, filter DetailFilter) (*domain.SessionPage, error)
	Ranking(ctx context.Context, period Period) ([]domain.RankingEntry, error)
}

type engine struct {
	sessions session.Store
	tasks    task.Store
	users    user.Store
	now      func() time.Time
}

func NewEngine(sessions session.Store, tasks task.Store, users user.Store) Engine {
	return NewEngineWithClock(sessions, tasks, users, time.Now)
}

// NewEngineWithClock pins the engine's notion of "now"; period resolution
// and the streak walk are deterministic given the clock.
func NewEngineWithClock(
	sessions session.Store,
	tasks task.Store,
	users user.Store,
	now func() time.Time,
) Engine {
	return &engine{
		sessions: sessions,
		tasks:    tasks,
		users:    users,
		now:      now,
	}
}

// Summary assembles the full report for one user. The five sub-queries are
// independent and run concurrently; the first failure cancels the rest and
// aborts the whole report. Partial reports are never returned.
func (e *engine) Summary(ctx context.Context, userID string, period Period) (*domain.Report, error) {
	now := e.now()
	start := period.Start(now)

	var (
		typeStats  []store.TypeStats
		daily      []store.DailyFocus
		activeDays []store.ActiveDay
		rollup     *store.TaskRollup
		projects   []store.ProjectRollup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		typeStats, err = e.sessions.TypeStats(gctx, userID, start)
		return err
	})
	g.Go(func() error {
		var err error
		daily, err = e.sessions.DailyFocus(gctx, userID, start)
		return err
	})
	g.Go(func() error {
		// The streak deliberately ignores the requested window; it always
		// looks back over the most recent active days across all time.
		var err error
		activeDays, err = e.sessions.ActiveDays(gctx, userID, streakLookbackDays)
		return err
	})
	g.Go(func() error {
		var err error
		rollup, err = e.tasks.Rollup(gctx, userID, &start)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = e.tasks.ProjectRollups(gctx, userID, &start)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble report: %w", err)
	}

	res := &domain.Report{
		Period:     string(period),
		StartDate:  start,
		TimerStats: make(map[string]domain.TimerTypeStats, len(typeStats)),
		DailyStats: make([]domain.DailyFocus, 0, len(daily)),
		TaskStats: domain.TaskStats{
			TotalTasks:         rollup.TotalTasks,
			CompletedTasks:     rollup.CompletedTasks,
			TotalPomodoros:     rollup.TotalPomodoros,
			CompletedPomodoros: rollup.CompletedPomodoros,
		},
		ProjectStats: make([]domain.ProjectStats, 0, len(projects)),
	}

	var pomodoroMinutes float64
	for _, st := range typeStats {
		res.TimerStats[st.Type] = domain.TimerTypeStats{
			Count:               st.Count,
			TotalDuration:       st.TotalDuration,
			TotalActualDuration: st.TotalActualMinutes,
		}
		if st.Type == domain.SessionPomodoro {
			pomodoroMinutes += st.TotalActualMinutes
		}
	}
	for _, d := range daily {
		res.DailyStats = append(res.DailyStats, domain.DailyFocus{
			Date:       d.Date,
			FocusHours: d.FocusHours,
			Sessions:   d.Sessions,
		})
	}
	for _, p := range projects {
		res.ProjectStats = append(res.ProjectStats, domain.ProjectStats{
			Project:            p.Project,
			Count:              p.Count,
			Completed:          p.Completed,
			TotalPomodoros:     p.TotalPomodoros,
			CompletedPomodoros: p.CompletedPomodoros,
		})
	}

	res.ActivitySummary = domain.ActivitySummary{
		HoursFocused: roundHours(pomodoroMinutes),
		DaysAccessed: len(daily),
		DayStreak:    currentStreak(activeDays, now),
	}
	return res, nil
}

func (e *engine) Detail(ctx context.Context, userID string, filter DetailFilter) (*domain.SessionPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultDetailLimit
	}
	if limit > maxDetailLimit {
		limit = maxDetailLimit
	}

	sf := store.SessionFilter{
		UserID:    userID,
		Type:      filter.Type,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	sessions, err := e.sessions.ListCompleted(ctx, sf)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	total, err := e.sessions.CountCompleted(ctx, sf)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	res := &domain.SessionPage{
		Sessions:    make([]domain.Session, 0, len(sessions)),
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
		Total:       total,
	}
	for _, s := range sessions {
		res.Sessions = append(res.Sessions, adapters.MapSessionStoreToDomain(s))
	}
	return res, nil
}

// Ranking is a two-step read: aggregate per-user minutes, then batch-fetch
// identities. Users with no qualifying sessions never appear; users whose
// identity is missing are dropped rather than shown anonymous.
func (e *engine) Ranking(ctx context.Context, period Period) ([]domain.RankingEntry, error) {
	start := period.Start(e.now())

	totals, err := e.sessions.FocusTotals(ctx, start, rankingLimit)
	if err != nil {
		return nil, fmt.Errorf("focus totals: %w", err)
	}

	ids := make([]string, 0, len(totals))
	for _, t := range totals {
		ids = append(ids, t.UserID)
	}
	users, err := e.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch ranking identities: %w", err)
	}

	entries := make([]domain.RankingEntry, 0, len(totals))
	for _, t := range totals {
		u, ok := users[t.UserID]
		if !ok {
			continue
		}
		entries = append(entries, domain.RankingEntry{
			Username:       u.Username,
			TotalFocusTime: t.TotalMinutes,
		})
	}
	return entries, nil
}

// roundHours converts summed minutes to hours at one decimal place,
// rounding half away from zero: 90m -> 1.5, 95m -> 1.6.
func roundHours(minutes float64) float64 {
	return math.Round(minutes/60*10) / 10
}
