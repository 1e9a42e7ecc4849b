package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authhandler "github.com/de-tools/focus-atlas/pkg/handlers/auth"
	reporthandler "github.com/de-tools/focus-atlas/pkg/handlers/report"
	settingshandler "github.com/de-tools/focus-atlas/pkg/handlers/settings"
	taskhandler "github.com/de-tools/focus-atlas/pkg/handlers/task"
	timerhandler "github.com/de-tools/focus-atlas/pkg/handlers/timer"
	focusmiddleware "github.com/de-tools/focus-atlas/pkg/server/middleware"
	"github.com/de-tools/focus-atlas/pkg/services/auth"
	"github.com/de-tools/focus-atlas/pkg/services/report"
	"github.com/de-tools/focus-atlas/pkg/services/settings"
	"github.com/de-tools/focus-atlas/pkg/services/task"
	"github.com/de-tools/focus-atlas/pkg/services/timer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Auth     auth.Service
	Reports  report.Engine
	Tasks    task.Service
	Settings settings.Service
	Timer    timer.Service
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// ConfigureRouter wires every endpoint under /api/v1. Auth endpoints are
// public; everything else sits behind the bearer middleware.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies

	authHandler := authhandler.NewHandler(deps.Auth)
	reportHandler := reporthandler.NewHandler(deps.Reports)
	taskHandler := taskhandler.NewHandler(deps.Tasks)
	settingsHandler := settingshandler.NewHandler(deps.Settings)
	timerHandler := timerhandler.NewHandler(deps.Timer)

	router := chi.NewRouter()
	router.Use(focusmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(focusmiddleware.RequireAuth(deps.Auth))

			r.Get("/reports", reportHandler.GetReport)
			r.Get("/reports/detail", reportHandler.GetDetail)
			r.Get("/reports/ranking", reportHandler.GetRanking)

			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks/stats", taskHandler.Stats)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
			r.Patch("/tasks/{id}/toggle", taskHandler.Toggle)
			r.Patch("/tasks/{id}/pomodoros", taskHandler.UpdatePomodoros)

			r.Get("/settings", settingsHandler.Get)
			r.Put("/settings", settingsHandler.Update)
			r.Post("/settings/reset", settingsHandler.Reset)

			r.Post("/sessions", timerHandler.Start)
			r.Post("/sessions/{id}/complete", timerHandler.Complete)
		})
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
