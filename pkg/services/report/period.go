package report

import "time"

// Period is a reporting window keyword resolved against "now" at query
// time. Windows have no upper bound; they always run to the query time.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Normalize maps unknown period keywords to the weekly window rather than
// rejecting them.
func Normalize(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s)
	}
	return PeriodWeek
}

// NormalizeRanking restricts the leaderboard to week or month windows.
func NormalizeRanking(s string) Period {
	switch Period(s) {
	case PeriodWeek, PeriodMonth:
		return Period(s)
	}
	return PeriodWeek
}

// Start resolves the window's inclusive lower bound. Day means the start of
// the current calendar day; week is a rolling seven days, not aligned to
// calendar weeks; month and year step back by one calendar unit.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}
