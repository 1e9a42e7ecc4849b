package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/api"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/server/middleware"
	reportsvc "github.com/de-tools/focus-atlas/pkg/services/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) Summary(ctx context.Context, userID string, period reportsvc.Period) (*domain.Report, error) {
	args := m.Called(ctx, userID, period)
	if v := args.Get(0); v != nil {
		return v.(*domain.Report), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEngine) Detail(ctx context.Context, userID string, filter reportsvc.DetailFilter) (*domain.SessionPage, error) {
	args := m.Called(ctx, userID, filter)
	if v := args.Get(0); v != nil {
		return v.(*domain.SessionPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEngine) Ranking(ctx context.Context, period reportsvc.Period) ([]domain.RankingEntry, error) {
	args := m.Called(ctx, period)
	if v := args.Get(0); v != nil {
		return v.([]domain.RankingEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := middleware.WithUser(req.Context(), domain.User{ID: "u1", Username: "alice"})
	return req.WithContext(ctx)
}

func TestHandler_GetReport(t *testing.T) {
	engine := &mockEngine{}
	engine.On("Summary", mock.Anything, "u1", reportsvc.PeriodMonth).Return(&domain.Report{
		Period:    "month",
		StartDate: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		ActivitySummary: domain.ActivitySummary{
			HoursFocused: 12.5, DaysAccessed: 9, DayStreak: 3,
		},
		TimerStats: map[string]domain.TimerTypeStats{
			domain.SessionPomodoro: {Count: 30, TotalDuration: 750, TotalActualDuration: 748.2},
		},
	}, nil)

	handler := NewHandler(engine)
	rec := httptest.NewRecorder()
	handler.GetReport(rec, authedRequest(http.MethodGet, "/reports?period=month"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body api.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "month", body.Period)
	assert.Equal(t, 12.5, body.ActivitySummary.HoursFocused)
	assert.Equal(t, 3, body.ActivitySummary.DayStreak)
	require.Contains(t, body.TimerStats, domain.SessionPomodoro)
	assert.Equal(t, 30, body.TimerStats[domain.SessionPomodoro].Count)

	engine.AssertExpectations(t)
}

func TestHandler_GetReport_NormalizesUnknownPeriod(t *testing.T) {
	engine := &mockEngine{}
	engine.On("Summary", mock.Anything, "u1", reportsvc.PeriodWeek).Return(&domain.Report{Period: "week"}, nil)

	handler := NewHandler(engine)
	rec := httptest.NewRecorder()
	handler.GetReport(rec, authedRequest(http.MethodGet, "/reports?period=decade"))

	require.Equal(t, http.StatusOK, rec.Code)
	engine.AssertExpectations(t)
}

func TestHandler_GetReport_Unauthenticated(t *testing.T) {
	handler := NewHandler(&mockEngine{})
	rec := httptest.NewRecorder()
	handler.GetReport(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_GetReport_EngineFailure(t *testing.T) {
	engine := &mockEngine{}
	engine.On("Summary", mock.Anything, "u1", reportsvc.PeriodWeek).
		Return(nil, errors.New("boom"))

	handler := NewHandler(engine)
	rec := httptest.NewRecorder()
	handler.GetReport(rec, authedRequest(http.MethodGet, "/reports"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_GetDetail(t *testing.T) {
	engine := &mockEngine{}
	engine.On("Detail", mock.Anything, "u1", mock.MatchedBy(func(f reportsvc.DetailFilter) bool {
		return f.Page == 2 && f.Limit == 10 && f.Type == "pomodoro" &&
			f.StartDate != nil && f.StartDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.SessionPage{
		Sessions:    []domain.Session{{ID: "s1", Type: "pomodoro", Duration: 25, Completed: true}},
		TotalPages:  4,
		CurrentPage: 2,
		Total:       35,
	}, nil)

	handler := NewHandler(engine)
	rec := httptest.NewRecorder()
	handler.GetDetail(rec, authedRequest(http.MethodGet,
		"/reports/detail?page=2&limit=10&type=pomodoro&startDate=2025-03-01"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body api.SessionPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.TotalPages)
	assert.Equal(t, 35, body.Total)
	require.Len(t, body.Sessions, 1)
	assert.Equal(t, "s1", body.Sessions[0].ID)

	engine.AssertExpectations(t)
}

func TestHandler_GetDetail_BadDate(t *testing.T) {
	handler := NewHandler(&mockEngine{})
	rec := httptest.NewRecorder()
	handler.GetDetail(rec, authedRequest(http.MethodGet, "/reports/detail?startDate=03-01-2025"))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "startDate")
}

func TestHandler_GetDetail_BadPage(t *testing.T) {
	handler := NewHandler(&mockEngine{})
	rec := httptest.NewRecorder()
	handler.GetDetail(rec, authedRequest(http.MethodGet, "/reports/detail?page=two"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetRanking(t *testing.T) {
	engine := &mockEngine{}
	engine.On("Ranking", mock.Anything, reportsvc.PeriodWeek).Return([]domain.RankingEntry{
		{Username: "alice", TotalFocusTime: 300},
		{Username: "bob", TotalFocusTime: 120},
	}, nil)

	handler := NewHandler(engine)
	rec := httptest.NewRecorder()
	// Ranking only knows week and month; day degrades to week.
	handler.GetRanking(rec, authedRequest(http.MethodGet, "/reports/ranking?period=day"))

	require.Equal(t, http.StatusOK, rec.Code)

	var body api.Ranking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "week", body.Period)
	require.Len(t, body.Ranking, 2)
	assert.Equal(t, "alice", body.Ranking[0].Username)
	assert.Equal(t, 300.0, body.Ranking[0].TotalFocusTime)

	engine.AssertExpectations(t)
}
