package adapters

import (
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
)

func MapSessionStoreToDomain(s store.TimerSession) domain.Session {
	res := domain.Session{
		ID:        s.ID,
		Type:      s.Type,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Duration:  s.Duration,
		Completed: s.Completed,
	}
	if s.TaskID != nil {
		task := domain.SessionTask{ID: *s.TaskID}
		if s.TaskTitle != nil {
			task.Title = *s.TaskTitle
		}
		if s.TaskProject != nil {
			task.Project = *s.TaskProject
		}
		res.Task = &task
	}
	return res
}

func MapUserStoreToDomain(u store.User) domain.User {
	return domain.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
