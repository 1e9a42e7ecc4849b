package adapters

import (
	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
)

func MapSettingsDomainToApi(s domain.Settings) api.Settings {
	return api.Settings{
		Timer: api.TimerSettings{
			Pomodoro:           s.Timer.Pomodoro,
			ShortBreak:         s.Timer.ShortBreak,
			LongBreak:          s.Timer.LongBreak,
			LongBreakInterval:  s.Timer.LongBreakInterval,
			AutoStartBreaks:    s.Timer.AutoStartBreaks,
			AutoStartPomodoros: s.Timer.AutoStartPomodoros,
		},
		Task: api.TaskSettings{
			AutoCheckTasks:  s.Task.AutoCheckTasks,
			AutoSwitchTasks: s.Task.AutoSwitchTasks,
		},
		Sound: api.SoundSettings{
			AlarmSound:   s.Sound.AlarmSound,
			AlarmVolume:  s.Sound.AlarmVolume,
			AlarmRepeat:  s.Sound.AlarmRepeat,
			TickingSound: s.Sound.TickingSound,
		},
		Theme: s.Theme,
		Notifications: api.NotificationSettings{
			Enabled:              s.Notifications.Enabled,
			BrowserNotifications: s.Notifications.BrowserNotifications,
		},
	}
}
