package timer

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/handlers/render"
	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/server/middleware"
	timersvc "github.com/de-tools/focus-atlas/pkg/services/timer"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	timer timersvc.Service
}

func NewHandler(timer timersvc.Service) *Handler {
	return &Handler{timer: timer}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var body api.CreateSession
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Err(ctx, w, domain.Validationf("invalid request body"))
		return
	}

	sess, err := h.timer.Start(ctx, user.ID, timersvc.StartRequest{
		Type:     body.Type,
		Duration: body.Duration,
		TaskID:   body.TaskID,
	})
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusCreated, adapters.MapSessionDomainToApi(*sess))
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	if err := h.timer.Complete(ctx, user.ID, chi.URLParam(r, "id")); err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, api.Message{Message: "session completed"})
}
