package report

import (
	"testing"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
)

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		days     []store.ActiveDay
		expected int
	}{
		{
			name:     "no active days",
			days:     []store.ActiveDay{},
			expected: 0,
		},
		{
			name:     "only today",
			days:     []store.ActiveDay{{Date: "2025-03-15", Sessions: 2}},
			expected: 1,
		},
		{
			name: "today and yesterday",
			days: []store.ActiveDay{
				{Date: "2025-03-15", Sessions: 1},
				{Date: "2025-03-14", Sessions: 3},
			},
			expected: 2,
		},
		{
			name: "streak broken when today is inactive",
			days: []store.ActiveDay{
				{Date: "2025-03-14", Sessions: 1},
				{Date: "2025-03-13", Sessions: 1},
			},
			expected: 0,
		},
		{
			name: "gap stops the walk",
			days: []store.ActiveDay{
				{Date: "2025-03-15", Sessions: 1},
				{Date: "2025-03-14", Sessions: 1},
				{Date: "2025-03-12", Sessions: 1},
				{Date: "2025-03-11", Sessions: 1},
			},
			expected: 2,
		},
		{
			name: "malformed date stops the walk",
			days: []store.ActiveDay{
				{Date: "2025-03-15", Sessions: 1},
				{Date: "not-a-date", Sessions: 1},
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, currentStreak(tt.days, now))
		})
	}
}
