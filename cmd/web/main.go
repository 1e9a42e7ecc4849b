package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/focus-atlas/pkg/server"
	"github.com/de-tools/focus-atlas/pkg/services/auth"
	"github.com/de-tools/focus-atlas/pkg/services/config"
	"github.com/de-tools/focus-atlas/pkg/services/report"
	"github.com/de-tools/focus-atlas/pkg/services/settings"
	"github.com/de-tools/focus-atlas/pkg/services/task"
	"github.com/de-tools/focus-atlas/pkg/services/timer"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	sessionstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/session"
	settingsstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/settings"
	taskstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/task"
	userstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/user"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Focus Atlas API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (optional, env vars work without it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DB.Path})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	sessions, err := sessionstore.NewStore(db)
	if err != nil {
		return err
	}
	tasks, err := taskstore.NewStore(db)
	if err != nil {
		return err
	}
	users, err := userstore.NewStore(db)
	if err != nil {
		return err
	}
	prefs, err := settingsstore.NewStore(db)
	if err != nil {
		return err
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Dependencies: server.Dependencies{
			Auth:     auth.NewService(users, []byte(cfg.Auth.JWTSecret)),
			Reports:  report.NewEngine(sessions, tasks, users),
			Tasks:    task.NewService(tasks),
			Settings: settings.NewService(prefs),
			Timer:    timer.NewService(sessions),
			Logger:   logger,
		},
	})

	return api.Start()
}
