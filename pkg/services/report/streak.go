package report

import (
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/store"
)

const dateLayout = "2006-01-02"

// currentStreak counts consecutive UTC days, ending today, with at least
// one completed pomodoro session. days must be sorted descending by date
// and is capped at streakLookbackDays distinct days by the store query, so
// a true streak longer than the cap reports as the cap.
//
// The walk demands today itself be active: the first entry must sit zero
// days behind today, the next one day, and so on. The first gap stops it.
func currentStreak(days []store.ActiveDay, now time.Time) int {
	today := now.UTC().Truncate(24 * time.Hour)

	streak := 0
	for _, day := range days {
		d, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			break
		}
		daysDiff := int(today.Sub(d).Hours() / 24)
		if daysDiff != streak {
			break
		}
		streak++
	}
	return streak
}
