package api

import "time"

type Report struct {
	Period          string                    `json:"period"`
	StartDate       time.Time                 `json:"startDate"`
	ActivitySummary ActivitySummary           `json:"activitySummary"`
	TimerStats      map[string]TimerTypeStats `json:"timerStats"`
	DailyStats      []DailyFocus              `json:"dailyStats"`
	TaskStats       TaskStats                 `json:"taskStats"`
	ProjectStats    []ProjectStats            `json:"projectStats"`
}

type ActivitySummary struct {
	HoursFocused float64 `json:"hoursFocused"`
	DaysAccessed int     `json:"daysAccessed"`
	DayStreak    int     `json:"dayStreak"`
}

type TimerTypeStats struct {
	Count               int     `json:"count"`
	TotalDuration       int     `json:"totalDuration"`
	TotalActualDuration float64 `json:"totalActualDuration"`
}

type DailyFocus struct {
	Date       string  `json:"date"`
	FocusHours float64 `json:"focusHours"`
	Sessions   int     `json:"sessions"`
}

type TaskStats struct {
	TotalTasks         int `json:"totalTasks"`
	CompletedTasks     int `json:"completedTasks"`
	TotalPomodoros     int `json:"totalPomodoros"`
	CompletedPomodoros int `json:"completedPomodoros"`
}

type ProjectStats struct {
	Project            string `json:"project"`
	Count              int    `json:"count"`
	Completed          int    `json:"completed"`
	TotalPomodoros     int    `json:"totalPomodoros"`
	CompletedPomodoros int    `json:"completedPomodoros"`
}

type SessionPage struct {
	Sessions    []Session `json:"sessions"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	Total       int       `json:"total"`
}

type Ranking struct {
	Period  string         `json:"period"`
	Ranking []RankingEntry `json:"ranking"`
}

type RankingEntry struct {
	Username       string  `json:"username"`
	TotalFocusTime float64 `json:"totalFocusTime"`
}
