package store

import "time"

// TimerSession is a single timer run as persisted. EndTime is nil until the
// run is completed; aggregates must never see a completed session without it.
type TimerSession struct {
	ID        string
	UserID    string
	TaskID    *string
	Type      string
	StartTime time.Time
	EndTime   *time.Time
	Duration  int // planned minutes, may differ from actual elapsed time
	Completed bool

	// Joined task fields, populated only by detail listings.
	TaskTitle   *string
	TaskProject *string
}

// TypeStats is the per-session-type aggregate over a time window.
type TypeStats struct {
	Type               string
	Count              int
	TotalDuration      int
	TotalActualMinutes float64
}

// DailyFocus is one day's worth of completed pomodoro time. Date is a
// UTC YYYY-MM-DD key.
type DailyFocus struct {
	Date       string
	FocusHours float64
	Sessions   int
}

// ActiveDay is a day with at least one completed pomodoro session.
type ActiveDay struct {
	Date     string
	Sessions int
}

// UserFocus is one user's summed pomodoro minutes within a window.
type UserFocus struct {
	UserID       string
	TotalMinutes float64
}

// SessionFilter narrows detail listings.
type SessionFilter struct {
	UserID    string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}
