package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	settingsstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/settings"
)

// Update carries a partial settings change; nil fields are left untouched.
// Each named field is applied by its own operation in updateOps, replacing
// the original's dotted-path document mutation.
type Update struct {
	Timer         TimerUpdate
	Task          TaskUpdate
	Sound         SoundUpdate
	Theme         *string
	Notifications NotificationUpdate
}

type TimerUpdate struct {
	Pomodoro           *int
	ShortBreak         *int
	LongBreak          *int
	LongBreakInterval  *int
	AutoStartBreaks    *bool
	AutoStartPomodoros *bool
}

type TaskUpdate struct {
	AutoCheckTasks  *bool
	AutoSwitchTasks *bool
}

type SoundUpdate struct {
	AlarmSound   *string
	AlarmVolume  *int
	AlarmRepeat  *int
	TickingSound *string
}

type NotificationUpdate struct {
	Enabled              *bool
	BrowserNotifications *bool
}

type Service interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Update(ctx context.Context, userID string, upd Update) (*domain.Settings, error)
	Reset(ctx context.Context, userID string) (*domain.Settings, error)
}

type service struct {
	store settingsstore.Store
	now   func() time.Time
}

func NewService(store settingsstore.Store) Service {
	return &service{store: store, now: time.Now}
}

// Get returns the user's settings, creating the defaults on first read.
func (s *service) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	rec, err := s.store.Get(ctx, userID)
	if errors.Is(err, sqlite.ErrNotFound) {
		defaults := domain.DefaultSettings()
		if err := s.save(ctx, userID, defaults); err != nil {
			return nil, err
		}
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}

	var settings domain.Settings
	if err := json.Unmarshal(rec.Document, &settings); err != nil {
		return nil, fmt.Errorf("decode settings document: %w", err)
	}
	return &settings, nil
}

func (s *service) Update(ctx context.Context, userID string, upd Update) (*domain.Settings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, op := range updateOps {
		if err := op.apply(settings, upd); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, userID, *settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *service) Reset(ctx context.Context, userID string) (*domain.Settings, error) {
	if err := s.store.Delete(ctx, userID); err != nil {
		return nil, err
	}
	defaults := domain.DefaultSettings()
	if err := s.save(ctx, userID, defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

func (s *service) save(ctx context.Context, userID string, settings domain.Settings) error {
	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings document: %w", err)
	}
	return s.store.Save(ctx, store.Settings{
		UserID:    userID,
		Document:  doc,
		UpdatedAt: s.now(),
	})
}

// updateOp applies one named field of an Update, validating its range.
type updateOp struct {
	name  string
	apply func(s *domain.Settings, u Update) error
}

var updateOps = []updateOp{
	intOp("timer.pomodoro", 1, 120,
		func(u Update) *int { return u.Timer.Pomodoro },
		func(s *domain.Settings, v int) { s.Timer.Pomodoro = v }),
	intOp("timer.shortBreak", 1, 30,
		func(u Update) *int { return u.Timer.ShortBreak },
		func(s *domain.Settings, v int) { s.Timer.ShortBreak = v }),
	intOp("timer.longBreak", 1, 60,
		func(u Update) *int { return u.Timer.LongBreak },
		func(s *domain.Settings, v int) { s.Timer.LongBreak = v }),
	intOp("timer.longBreakInterval", 1, 10,
		func(u Update) *int { return u.Timer.LongBreakInterval },
		func(s *domain.Settings, v int) { s.Timer.LongBreakInterval = v }),
	boolOp("timer.autoStartBreaks",
		func(u Update) *bool { return u.Timer.AutoStartBreaks },
		func(s *domain.Settings, v bool) { s.Timer.AutoStartBreaks = v }),
	boolOp("timer.autoStartPomodoros",
		func(u Update) *bool { return u.Timer.AutoStartPomodoros },
		func(s *domain.Settings, v bool) { s.Timer.AutoStartPomodoros = v }),
	boolOp("task.autoCheckTasks",
		func(u Update) *bool { return u.Task.AutoCheckTasks },
		func(s *domain.Settings, v bool) { s.Task.AutoCheckTasks = v }),
	boolOp("task.autoSwitchTasks",
		func(u Update) *bool { return u.Task.AutoSwitchTasks },
		func(s *domain.Settings, v bool) { s.Task.AutoSwitchTasks = v }),
	enumOp("sound.alarmSound", []string{"Wood", "Digital", "Bell", "Chime", "None"},
		func(u Update) *string { return u.Sound.AlarmSound },
		func(s *domain.Settings, v string) { s.Sound.AlarmSound = v }),
	intOp("sound.alarmVolume", 0, 100,
		func(u Update) *int { return u.Sound.AlarmVolume },
		func(s *domain.Settings, v int) { s.Sound.AlarmVolume = v }),
	intOp("sound.alarmRepeat", 1, 10,
		func(u Update) *int { return u.Sound.AlarmRepeat },
		func(s *domain.Settings, v int) { s.Sound.AlarmRepeat = v }),
	enumOp("sound.tickingSound", []string{"None", "Clock", "Metronome"},
		func(u Update) *string { return u.Sound.TickingSound },
		func(s *domain.Settings, v string) { s.Sound.TickingSound = v }),
	enumOp("theme", []string{"red", "blue", "green", "purple"},
		func(u Update) *string { return u.Theme },
		func(s *domain.Settings, v string) { s.Theme = v }),
	boolOp("notifications.enabled",
		func(u Update) *bool { return u.Notifications.Enabled },
		func(s *domain.Settings, v bool) { s.Notifications.Enabled = v }),
	boolOp("notifications.browserNotifications",
		func(u Update) *bool { return u.Notifications.BrowserNotifications },
		func(s *domain.Settings, v bool) { s.Notifications.BrowserNotifications = v }),
}

func intOp(name string, min, max int, pick func(Update) *int, set func(*domain.Settings, int)) updateOp {
	return updateOp{name: name, apply: func(s *domain.Settings, u Update) error {
		v := pick(u)
		if v == nil {
			return nil
		}
		if *v < min || *v > max {
			return domain.Validationf("%s must be between %d and %d", name, min, max)
		}
		set(s, *v)
		return nil
	}}
}

func boolOp(name string, pick func(Update) *bool, set func(*domain.Settings, bool)) updateOp {
	return updateOp{name: name, apply: func(s *domain.Settings, u Update) error {
		if v := pick(u); v != nil {
			set(s, *v)
		}
		return nil
	}}
}

func enumOp(name string, allowed []string, pick func(Update) *string, set func(*domain.Settings, string)) updateOp {
	return updateOp{name: name, apply: func(s *domain.Settings, u Update) error {
		v := pick(u)
		if v == nil {
			return nil
		}
		for _, a := range allowed {
			if *v == a {
				set(s, *v)
				return nil
			}
		}
		return domain.Validationf("%s must be one of %v", name, allowed)
	}}
}
