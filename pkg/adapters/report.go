package adapters

import (
	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
)

func MapReportDomainToApi(r domain.Report) api.Report {
	res := api.Report{
		Period:    r.Period,
		StartDate: r.StartDate,
		ActivitySummary: api.ActivitySummary{
			HoursFocused: r.ActivitySummary.HoursFocused,
			DaysAccessed: r.ActivitySummary.DaysAccessed,
			DayStreak:    r.ActivitySummary.DayStreak,
		},
		TimerStats:   make(map[string]api.TimerTypeStats, len(r.TimerStats)),
		DailyStats:   make([]api.DailyFocus, 0, len(r.DailyStats)),
		TaskStats:    MapTaskStatsDomainToApi(r.TaskStats),
		ProjectStats: MapProjectStatsDomainToApi(r.ProjectStats),
	}

	for sessType, stats := range r.TimerStats {
		res.TimerStats[sessType] = api.TimerTypeStats{
			Count:               stats.Count,
			TotalDuration:       stats.TotalDuration,
			TotalActualDuration: stats.TotalActualDuration,
		}
	}
	for _, day := range r.DailyStats {
		res.DailyStats = append(res.DailyStats, api.DailyFocus{
			Date:       day.Date,
			FocusHours: day.FocusHours,
			Sessions:   day.Sessions,
		})
	}
	return res
}

func MapTaskStatsDomainToApi(s domain.TaskStats) api.TaskStats {
	return api.TaskStats{
		TotalTasks:         s.TotalTasks,
		CompletedTasks:     s.CompletedTasks,
		TotalPomodoros:     s.TotalPomodoros,
		CompletedPomodoros: s.CompletedPomodoros,
	}
}

func MapProjectStatsDomainToApi(stats []domain.ProjectStats) []api.ProjectStats {
	res := make([]api.ProjectStats, 0, len(stats))
	for _, p := range stats {
		res = append(res, api.ProjectStats{
			Project:            p.Project,
			Count:              p.Count,
			Completed:          p.Completed,
			TotalPomodoros:     p.TotalPomodoros,
			CompletedPomodoros: p.CompletedPomodoros,
		})
	}
	return res
}

func MapSessionPageDomainToApi(p domain.SessionPage) api.SessionPage {
	res := api.SessionPage{
		Sessions:    make([]api.Session, 0, len(p.Sessions)),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Total:       p.Total,
	}
	for _, s := range p.Sessions {
		res.Sessions = append(res.Sessions, MapSessionDomainToApi(s))
	}
	return res
}

func MapSessionDomainToApi(s domain.Session) api.Session {
	res := api.Session{
		ID:        s.ID,
		Type:      s.Type,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Duration:  s.Duration,
		Completed: s.Completed,
	}
	if s.Task != nil {
		res.Task = &api.SessionTask{
			ID:      s.Task.ID,
			Title:   s.Task.Title,
			Project: s.Task.Project,
		}
	}
	return res
}

func MapRankingDomainToApi(period string, entries []domain.RankingEntry) api.Ranking {
	res := api.Ranking{
		Period:  period,
		Ranking: make([]api.RankingEntry, 0, len(entries)),
	}
	for _, e := range entries {
		res.Ranking = append(res.Ranking, api.RankingEntry{
			Username:       e.Username,
			TotalFocusTime: e.TotalFocusTime,
		})
	}
	return res
}
