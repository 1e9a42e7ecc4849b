package task

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/handlers/render"
	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/server/middleware"
	tasksvc "github.com/de-tools/focus-atlas/pkg/services/task"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	tasks tasksvc.Service
}

func NewHandler(tasks tasksvc.Service) *Handler {
	return &Handler{tasks: tasks}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := domain.TaskFilter{
		Project:  q.Get("project"),
		Priority: q.Get("priority"),
	}
	if raw := q.Get("completed"); raw != "" {
		completed := raw == "true"
		filter.Completed = &completed
	}

	tasks, err := h.tasks.List(ctx, user.ID, filter)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapTasksDomainToApi(tasks))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var body api.CreateTask
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Err(ctx, w, domain.Validationf("invalid request body"))
		return
	}

	created, err := h.tasks.Create(ctx, user.ID, tasksvc.CreateRequest{
		Title:              body.Title,
		Description:        body.Description,
		Project:            body.Project,
		EstimatedPomodoros: body.EstimatedPomodoros,
		Priority:           body.Priority,
		DueDate:            body.DueDate,
	})
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusCreated, adapters.MapTaskDomainToApi(*created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var body api.UpdateTask
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Err(ctx, w, domain.Validationf("invalid request body"))
		return
	}

	updated, err := h.tasks.Update(ctx, user.ID, chi.URLParam(r, "id"), domain.TaskUpdate{
		Title:              body.Title,
		Description:        body.Description,
		Project:            body.Project,
		EstimatedPomodoros: body.EstimatedPomodoros,
		Priority:           body.Priority,
		DueDate:            body.DueDate,
	})
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapTaskDomainToApi(*updated))
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	toggled, err := h.tasks.Toggle(ctx, user.ID, chi.URLParam(r, "id"))
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapTaskDomainToApi(*toggled))
}

func (h *Handler) UpdatePomodoros(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var body api.UpdatePomodoros
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Err(ctx, w, domain.Validationf("invalid request body"))
		return
	}

	updated, err := h.tasks.SetCompletedPomodoros(ctx, user.ID, chi.URLParam(r, "id"), body.CompletedPomodoros)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapTaskDomainToApi(*updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	if err := h.tasks.Delete(ctx, user.ID, chi.URLParam(r, "id")); err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, api.Message{Message: "task deleted successfully"})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	overview, err := h.tasks.Stats(ctx, user.ID)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapTaskOverviewDomainToApi(*overview))
}
