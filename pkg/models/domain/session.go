package domain

import "time"

// Session types. Only pomodoro sessions count toward focus time.
const (
	SessionPomodoro   = "pomodoro"
	SessionShortBreak = "short-break"
	SessionLongBreak  = "long-break"
)

func ValidSessionType(t string) bool {
	switch t {
	case SessionPomodoro, SessionShortBreak, SessionLongBreak:
		return true
	}
	return false
}

type Session struct {
	ID        string
	Type      string
	StartTime time.Time
	EndTime   *time.Time
	Duration  int
	Completed bool
	Task      *SessionTask
}

// SessionTask is the linked task view attached to detail listings.
type SessionTask struct {
	ID      string
	Title   string
	Project string
}
