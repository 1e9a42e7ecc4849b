package domain

// Settings is a user's preferences document. Field ranges are enforced by
// the settings service's update operations, defaults by DefaultSettings.
type Settings struct {
	Timer         TimerSettings        `json:"timer"`
	Task          TaskSettings         `json:"task"`
	Sound         SoundSettings        `json:"sound"`
	Theme         string               `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`
}

type TimerSettings struct {
	Pomodoro           int  `json:"pomodoro"`
	ShortBreak         int  `json:"shortBreak"`
	LongBreak          int  `json:"longBreak"`
	LongBreakInterval  int  `json:"longBreakInterval"`
	AutoStartBreaks    bool `json:"autoStartBreaks"`
	AutoStartPomodoros bool `json:"autoStartPomodoros"`
}

type TaskSettings struct {
	AutoCheckTasks  bool `json:"autoCheckTasks"`
	AutoSwitchTasks bool `json:"autoSwitchTasks"`
}

type SoundSettings struct {
	AlarmSound   string `json:"alarmSound"`
	AlarmVolume  int    `json:"alarmVolume"`
	AlarmRepeat  int    `json:"alarmRepeat"`
	TickingSound string `json:"tickingSound"`
}

type NotificationSettings struct {
	Enabled              bool `json:"enabled"`
	BrowserNotifications bool `json:"browserNotifications"`
}

func DefaultSettings() Settings {
	return Settings{
		Timer: TimerSettings{
			Pomodoro:          25,
			ShortBreak:        5,
			LongBreak:         15,
			LongBreakInterval: 4,
		},
		Task: TaskSettings{
			AutoSwitchTasks: true,
		},
		Sound: SoundSettings{
			AlarmSound:   "Wood",
			AlarmVolume:  50,
			AlarmRepeat:  1,
			TickingSound: "None",
		},
		Theme: "red",
		Notifications: NotificationSettings{
			Enabled:              true,
			BrowserNotifications: true,
		},
	}
}
