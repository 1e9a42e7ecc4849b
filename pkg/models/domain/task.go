package domain

import "time"

const DefaultProject = "No Project"

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID                 string
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

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title              *string
	Description        *string
	Project            *string
	EstimatedPomodoros *int
	Priority           *string
	DueDate            *time.Time
}

type TaskFilter struct {
	Completed *bool
	Project   string
	Priority  string
}
