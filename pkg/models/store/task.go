package store

import "time"

type Task struct {
	ID                 string
	UserID             string
	Title              string
	Description        string
	Project            string
	Completed          bool
	CompletedAt        *time.Time
	EstimatedPomodoros int
	CompletedPomodoros int
	Priority           string
	DueDate            *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TaskRollup aggregates task counts for one user, optionally bounded by
// creation time.
type TaskRollup struct {
	TotalTasks         int
	CompletedTasks     int
	TotalPomodoros     int
	CompletedPomodoros int
}

// ProjectRollup is TaskRollup grouped by project label.
type ProjectRollup struct {
	Project            string
	Count              int
	Completed          int
	TotalPomodoros     int
	CompletedPomodoros int
}

type TaskFilter struct {
	UserID    string
	Completed *bool
	Project   string
	Priority  string
}
