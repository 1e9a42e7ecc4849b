package task

import (
	"context"
	"strings"
	"time"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	taskstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/task"
	"github.com/google/uuid"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 500
	minEstimated      = 1
	maxEstimated      = 10
)

type CreateRequest struct {
	Title              string
	Description        string
	Project            string
	EstimatedPomodoros int
	Priority           string
	DueDate            *time.Time
}

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (*domain.Task, error)
	List(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, userID, id string, upd domain.TaskUpdate) (*domain.Task, error)
	Toggle(ctx context.Context, userID, id string) (*domain.Task, error)
	SetCompletedPomodoros(ctx context.Context, userID, id string, count int) (*domain.Task, error)
	Delete(ctx context.Context, userID, id string) error
	Stats(ctx context.Context, userID string) (*domain.TaskOverview, error)
}

type service struct {
	tasks taskstore.Store
	now   func() time.Time
}

func NewService(tasks taskstore.Store) Service {
	return &service{tasks: tasks, now: time.Now}
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.Validationf("task title is required")
	}
	if len(title) > maxTitleLen {
		return nil, domain.Validationf("task title exceeds %d characters", maxTitleLen)
	}
	if len(req.Description) > maxDescriptionLen {
		return nil, domain.Validationf("description exceeds %d characters", maxDescriptionLen)
	}

	project := strings.TrimSpace(req.Project)
	if project == "" {
		project = domain.DefaultProject
	}

	estimated := req.EstimatedPomodoros
	if estimated == 0 {
		estimated = minEstimated
	}
	if estimated < minEstimated || estimated > maxEstimated {
		return nil, domain.Validationf("estimated pomodoros must be between %d and %d", minEstimated, maxEstimated)
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, domain.Validationf("invalid priority %q", priority)
	}

	now := s.now()
	rec := store.Task{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Title:              title,
		Description:        req.Description,
		Project:            project,
		EstimatedPomodoros: estimated,
		Priority:           priority,
		DueDate:            req.DueDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.tasks.Create(ctx, rec); err != nil {
		return nil, err
	}
	res := adapters.MapTaskStoreToDomain(rec)
	return &res, nil
}

func (s *service) List(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	records, err := s.tasks.List(ctx, store.TaskFilter{
		UserID:    userID,
		Completed: filter.Completed,
		Project:   filter.Project,
		Priority:  filter.Priority,
	})
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, adapters.MapTaskStoreToDomain(rec))
	}
	return tasks, nil
}

func (s *service) Update(ctx context.Context, userID, id string, upd domain.TaskUpdate) (*domain.Task, error) {
	rec, err := s.tasks.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, domain.Validationf("task title cannot be empty")
		}
		if len(title) > maxTitleLen {
			return nil, domain.Validationf("task title exceeds %d characters", maxTitleLen)
		}
		rec.Title = title
	}
	if upd.Description != nil {
		if len(*upd.Description) > maxDescriptionLen {
			return nil, domain.Validationf("description exceeds %d characters", maxDescriptionLen)
		}
		rec.Description = *upd.Description
	}
	if upd.Project != nil {
		project := strings.TrimSpace(*upd.Project)
		if project == "" {
			project = domain.DefaultProject
		}
		rec.Project = project
	}
	if upd.EstimatedPomodoros != nil {
		if *upd.EstimatedPomodoros < minEstimated || *upd.EstimatedPomodoros > maxEstimated {
			return nil, domain.Validationf("estimated pomodoros must be between %d and %d", minEstimated, maxEstimated)
		}
		rec.EstimatedPomodoros = *upd.EstimatedPomodoros
	}
	if upd.Priority != nil {
		if !domain.ValidPriority(*upd.Priority) {
			return nil, domain.Validationf("invalid priority %q", *upd.Priority)
		}
		rec.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		rec.DueDate = upd.DueDate
	}

	rec.UpdatedAt = s.now()
	if err := s.tasks.Update(ctx, *rec); err != nil {
		return nil, err
	}
	res := adapters.MapTaskStoreToDomain(*rec)
	return &res, nil
}

// Toggle flips completion; completedAt is set exactly when the task is
// completed and cleared otherwise.
func (s *service) Toggle(ctx context.Context, userID, id string) (*domain.Task, error) {
	rec, err := s.tasks.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec.Completed = !rec.Completed
	if rec.Completed {
		rec.CompletedAt = &now
	} else {
		rec.CompletedAt = nil
	}
	rec.UpdatedAt = now

	if err := s.tasks.Update(ctx, *rec); err != nil {
		return nil, err
	}
	res := adapters.MapTaskStoreToDomain(*rec)
	return &res, nil
}

// SetCompletedPomodoros stores the client's count as-is. There is no upper
// bound tied to the estimate; the UI merely stops incrementing past it.
func (s *service) SetCompletedPomodoros(ctx context.Context, userID, id string, count int) (*domain.Task, error) {
	if count < 0 {
		return nil, domain.Validationf("completed pomodoros must be a positive integer")
	}

	rec, err := s.tasks.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	rec.CompletedPomodoros = count
	rec.UpdatedAt = s.now()

	if err := s.tasks.Update(ctx, *rec); err != nil {
		return nil, err
	}
	res := adapters.MapTaskStoreToDomain(*rec)
	return &res, nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	return s.tasks.Delete(ctx, id, userID)
}

// Stats is the all-time rollup variant; the report engine computes the
// window-bounded one.
func (s *service) Stats(ctx context.Context, userID string) (*domain.TaskOverview, error) {
	rollup, err := s.tasks.Rollup(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	projects, err := s.tasks.ProjectRollups(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	overview := &domain.TaskOverview{
		Overall: domain.TaskStats{
			TotalTasks:         rollup.TotalTasks,
			CompletedTasks:     rollup.CompletedTasks,
			TotalPomodoros:     rollup.TotalPomodoros,
			CompletedPomodoros: rollup.CompletedPomodoros,
		},
		Projects: make([]domain.ProjectStats, 0, len(projects)),
	}
	for _, p := range projects {
		overview.Projects = append(overview.Projects, domain.ProjectStats{
			Project:            p.Project,
			Count:              p.Count,
			Completed:          p.Completed,
			TotalPomodoros:     p.TotalPomodoros,
			CompletedPomodoros: p.CompletedPomodoros,
		})
	}
	return overview, nil
}
