package domain

import "time"

// Report is a full activity report for one user over a resolved period.
type Report struct {
	Period          string
	StartDate       time.Time
	ActivitySummary ActivitySummary
	TimerStats      map[string]TimerTypeStats
	DailyStats      []DailyFocus
	TaskStats       TaskStats
	ProjectStats    []ProjectStats
}

type ActivitySummary struct {
	HoursFocused float64
	DaysAccessed int
	DayStreak    int
}

// TimerTypeStats aggregates sessions of a single type. TotalDuration sums
// the planned minutes, TotalActualDuration the elapsed ones.
type TimerTypeStats struct {
	Count               int
	TotalDuration       int
	TotalActualDuration float64
}

type DailyFocus struct {
	Date       string
	FocusHours float64
	Sessions   int
}

type TaskStats struct {
	TotalTasks         int
	CompletedTasks     int
	TotalPomodoros     int
	CompletedPomodoros int
}

type ProjectStats struct {
	Project            string
	Count              int
	Completed          int
	TotalPomodoros     int
	CompletedPomodoros int
}

// SessionPage is one page of the detail listing.
type SessionPage struct {
	Sessions    []Session
	TotalPages  int
	CurrentPage int
	Total       int
}

// RankingEntry is one row of the cross-user focus leaderboard.
type RankingEntry struct {
	Username       string
	TotalFocusTime float64
}

// TaskOverview is the all-time stats variant used outside reports.
type TaskOverview struct {
	Overall  TaskStats
	Projects []ProjectStats
}
