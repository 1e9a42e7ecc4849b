package api

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

// UpdateSettings is a partial update; absent fields are left untouched.
type UpdateSettings struct {
	Timer struct {
		Pomodoro           *int  `json:"pomodoro,omitempty"`
		ShortBreak         *int  `json:"shortBreak,omitempty"`
		LongBreak          *int  `json:"longBreak,omitempty"`
		LongBreakInterval  *int  `json:"longBreakInterval,omitempty"`
		AutoStartBreaks    *bool `json:"autoStartBreaks,omitempty"`
		AutoStartPomodoros *bool `json:"autoStartPomodoros,omitempty"`
	} `json:"timer"`
	Task struct {
		AutoCheckTasks  *bool `json:"autoCheckTasks,omitempty"`
		AutoSwitchTasks *bool `json:"autoSwitchTasks,omitempty"`
	} `json:"task"`
	Sound struct {
		AlarmSound   *string `json:"alarmSound,omitempty"`
		AlarmVolume  *int    `json:"alarmVolume,omitempty"`
		AlarmRepeat  *int    `json:"alarmRepeat,omitempty"`
		TickingSound *string `json:"tickingSound,omitempty"`
	} `json:"sound"`
	Theme         *string `json:"theme,omitempty"`
	Notifications struct {
		Enabled              *bool `json:"enabled,omitempty"`
		BrowserNotifications *bool `json:"browserNotifications,omitempty"`
	} `json:"notifications"`
}
