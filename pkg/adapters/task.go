package adapters

import (
	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
)

func MapTaskStoreToDomain(t store.Task) domain.Task {
	return domain.Task{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Project:            t.Project,
		Completed:          t.Completed,
		CompletedAt:        t.CompletedAt,
		EstimatedPomodoros: t.EstimatedPomodoros,
		CompletedPomodoros: t.CompletedPomodoros,
		Priority:           t.Priority,
		DueDate:            t.DueDate,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func MapTaskDomainToApi(t domain.Task) api.Task {
	return api.Task{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Project:            t.Project,
		Completed:          t.Completed,
		CompletedAt:        t.CompletedAt,
		EstimatedPomodoros: t.EstimatedPomodoros,
		CompletedPomodoros: t.CompletedPomodoros,
		Priority:           t.Priority,
		DueDate:            t.DueDate,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func MapTasksDomainToApi(tasks []domain.Task) []api.Task {
	res := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, MapTaskDomainToApi(t))
	}
	return res
}

func MapTaskOverviewDomainToApi(o domain.TaskOverview) api.TaskOverview {
	return api.TaskOverview{
		Overall:  MapTaskStatsDomainToApi(o.Overall),
		Projects: MapProjectStatsDomainToApi(o.Projects),
	}
}
