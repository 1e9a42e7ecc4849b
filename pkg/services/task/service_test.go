package task

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	taskstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/task"
	userstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) Service {
	t.Helper()
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	seedUser(t, db)

	tasks, err := taskstore.NewStore(db)
	require.NoError(t, err)
	return NewService(tasks)
}

func seedUser(t *testing.T, db *sql.DB) {
	t.Helper()
	users, err := userstore.NewStore(db)
	require.NoError(t, err)
	err = users.Create(context.Background(), store.User{
		ID: "u1", Username: "alice", Email: "alice@example.com",
		PasswordHash: "x", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestService_CreateDefaults(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", CreateRequest{Title: "  write chapter one  "})
	require.NoError(t, err)

	assert.Equal(t, "write chapter one", created.Title)
	assert.Equal(t, domain.DefaultProject, created.Project)
	assert.Equal(t, 1, created.EstimatedPomodoros)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.False(t, created.Completed)
	assert.NotEmpty(t, created.ID)
}

func TestService_CreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateRequest
	}{
		{name: "empty title", req: CreateRequest{Title: "   "}},
		{name: "title too long", req: CreateRequest{Title: strings.Repeat("x", 201)}},
		{name: "description too long", req: CreateRequest{Title: "ok", Description: strings.Repeat("x", 501)}},
		{name: "too many pomodoros", req: CreateRequest{Title: "ok", EstimatedPomodoros: 11}},
		{name: "negative pomodoros", req: CreateRequest{Title: "ok", EstimatedPomodoros: -1}},
		{name: "bad priority", req: CreateRequest{Title: "ok", Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "u1", tt.req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestService_UpdatePartial(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", CreateRequest{Title: "draft", Description: "first pass"})
	require.NoError(t, err)

	newTitle := "final draft"
	updated, err := svc.Update(ctx, "u1", created.ID, domain.TaskUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "final draft", updated.Title)
	// Fields not named in the update survive.
	assert.Equal(t, "first pass", updated.Description)

	_, err = svc.Update(ctx, "u1", "missing", domain.TaskUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}

func TestService_Toggle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", CreateRequest{Title: "draft"})
	require.NoError(t, err)

	done, err := svc.Toggle(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	undone, err := svc.Toggle(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)
}

func TestService_SetCompletedPomodoros(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", CreateRequest{Title: "draft", EstimatedPomodoros: 2})
	require.NoError(t, err)

	// The count may run past the estimate.
	updated, err := svc.SetCompletedPomodoros(ctx, "u1", created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.CompletedPomodoros)

	_, err = svc.SetCompletedPomodoros(ctx, "u1", created.ID, -1)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestService_Stats(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", CreateRequest{Title: "a", Project: "Thesis", EstimatedPomodoros: 4})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", CreateRequest{Title: "b", EstimatedPomodoros: 2})
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, "u1", first.ID)
	require.NoError(t, err)

	overview, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Overall.TotalTasks)
	assert.Equal(t, 1, overview.Overall.CompletedTasks)
	assert.Equal(t, 6, overview.Overall.TotalPomodoros)
	require.Len(t, overview.Projects, 2)
}
