package settings

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/handlers/render"
	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/server/middleware"
	settingssvc "github.com/de-tools/focus-atlas/pkg/services/settings"
)

type Handler struct {
	settings settingssvc.Service
}

func NewHandler(settings settingssvc.Service) *Handler {
	return &Handler{settings: settings}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	current, err := h.settings.Get(ctx, user.ID)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapSettingsDomainToApi(*current))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var body api.UpdateSettings
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Err(ctx, w, domain.Validationf("invalid request body"))
		return
	}

	updated, err := h.settings.Update(ctx, user.ID, mapUpdate(body))
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapSettingsDomainToApi(*updated))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	defaults, err := h.settings.Reset(ctx, user.ID)
	if err != nil {
		render.Err(ctx, w, err)
		return
	}
	render.JSON(ctx, w, http.StatusOK, adapters.MapSettingsDomainToApi(*defaults))
}

func mapUpdate(body api.UpdateSettings) settingssvc.Update {
	return settingssvc.Update{
		Timer: settingssvc.TimerUpdate{
			Pomodoro:           body.Timer.Pomodoro,
			ShortBreak:         body.Timer.ShortBreak,
			LongBreak:          body.Timer.LongBreak,
			LongBreakInterval:  body.Timer.LongBreakInterval,
			AutoStartBreaks:    body.Timer.AutoStartBreaks,
			AutoStartPomodoros: body.Timer.AutoStartPomodoros,
		},
		Task: settingssvc.TaskUpdate{
			AutoCheckTasks:  body.Task.AutoCheckTasks,
			AutoSwitchTasks: body.Task.AutoSwitchTasks,
		},
		Sound: settingssvc.SoundUpdate{
			AlarmSound:   body.Sound.AlarmSound,
			AlarmVolume:  body.Sound.AlarmVolume,
			AlarmRepeat:  body.Sound.AlarmRepeat,
			TickingSound: body.Sound.TickingSound,
		},
		Theme: body.Theme,
		Notifications: settingssvc.NotificationUpdate{
			Enabled:              body.Notifications.Enabled,
			BrowserNotifications: body.Notifications.BrowserNotifications,
		},
	}
}
