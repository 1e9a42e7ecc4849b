package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Period
	}{
		{name: "day", input: "day", expected: PeriodDay},
		{name: "week", input: "week", expected: PeriodWeek},
		{name: "month", input: "month", expected: PeriodMonth},
		{name: "year", input: "year", expected: PeriodYear},
		{name: "unknown falls back to week", input: "fortnight", expected: PeriodWeek},
		{name: "empty falls back to week", input: "", expected: PeriodWeek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeRanking(t *testing.T) {
	assert.Equal(t, PeriodWeek, NormalizeRanking("week"))
	assert.Equal(t, PeriodMonth, NormalizeRanking("month"))
	assert.Equal(t, PeriodWeek, NormalizeRanking("day"))
	assert.Equal(t, PeriodWeek, NormalizeRanking("year"))
	assert.Equal(t, PeriodWeek, NormalizeRanking("bogus"))
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		period   Period
		expected time.Time
	}{
		{
			name:     "day resolves to midnight",
			period:   PeriodDay,
			expected: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "week is a rolling seven days",
			period:   PeriodWeek,
			expected: time.Date(2025, 3, 8, 10, 30, 45, 0, time.UTC),
		},
		{
			name:     "month steps back one calendar month",
			period:   PeriodMonth,
			expected: time.Date(2025, 2, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:     "year steps back one calendar year",
			period:   PeriodYear,
			expected: time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:     "unknown behaves like week",
			period:   Period("bogus"),
			expected: time.Date(2025, 3, 8, 10, 30, 45, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.period.Start(now))
		})
	}
}
