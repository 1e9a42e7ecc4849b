package api

import "time"

type Task struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Project            string     `json:"project"`
	Completed          bool       `json:"completed"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	EstimatedPomodoros int        `json:"estimatedPomodoros"`
	CompletedPomodoros int        `json:"completedPomodoros"`
	Priority           string     `json:"priority"`
	DueDate            *time.Time `json:"dueDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type CreateTask struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Project            string     `json:"project"`
	EstimatedPomodoros int        `json:"estimatedPomodoros"`
	Priority           string     `json:"priority"`
	DueDate            *time.Time `json:"dueDate,omitempty"`
}

type UpdateTask struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Project            *string    `json:"project,omitempty"`
	EstimatedPomodoros *int       `json:"estimatedPomodoros,omitempty"`
	Priority           *string    `json:"priority,omitempty"`
	DueDate            *time.Time `json:"dueDate,omitempty"`
}

type UpdatePomodoros struct {
	CompletedPomodoros int `json:"completedPomodoros"`
}

type TaskOverview struct {
	Overall  TaskStats      `json:"overall"`
	Projects []ProjectStats `json:"projects"`
}
