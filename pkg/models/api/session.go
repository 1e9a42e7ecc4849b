package api

import "time"

type Session struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	StartTime time.Time    `json:"startTime"`
	EndTime   *time.Time   `json:"endTime,omitempty"`
	Duration  int          `json:"duration"`
	Completed bool         `json:"completed"`
	Task      *SessionTask `json:"task,omitempty"`
}

type SessionTask struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Project string `json:"project"`
}

type CreateSession struct {
	Type     string  `json:"type"`
	Duration int     `json:"duration"`
	TaskID   *string `json:"taskId,omitempty"`
}
