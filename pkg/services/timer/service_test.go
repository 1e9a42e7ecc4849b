package timer

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	"github.com/de-tools/focus-atlas/pkg/store/sqlite"
	sessionstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/session"
	userstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (Service, sessionstore.Store) {
	t.Helper()
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users, err := userstore.NewStore(db)
	require.NoError(t, err)
	err = users.Create(context.Background(), store.User{
		ID: "u1", Username: "alice", Email: "alice@example.com",
		PasswordHash: "x", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	sessions, err := sessionstore.NewStore(db)
	require.NoError(t, err)
	return NewService(sessions), sessions
}

func TestService_StartComplete(t *testing.T) {
	svc, sessions := setupService(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, "u1", StartRequest{Type: domain.SessionPomodoro, Duration: 25})
	require.NoError(t, err)
	assert.NotEmpty(t, started.ID)
	assert.False(t, started.Completed)
	assert.Nil(t, started.EndTime)

	// A running session stays out of the completed listing.
	listed, err := sessions.ListCompleted(ctx, store.SessionFilter{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, svc.Complete(ctx, "u1", started.ID))

	listed, err = sessions.ListCompleted(ctx, store.SessionFilter{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Completed)
	assert.NotNil(t, listed[0].EndTime)
}

func TestService_StartValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  StartRequest
	}{
		{name: "unknown type", req: StartRequest{Type: "nap", Duration: 25}},
		{name: "zero duration", req: StartRequest{Type: domain.SessionPomodoro, Duration: 0}},
		{name: "duration too long", req: StartRequest{Type: domain.SessionPomodoro, Duration: 181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Start(ctx, "u1", tt.req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestService_CompleteUnknownSession(t *testing.T) {
	svc, _ := setupService(t)
	err := svc.Complete(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}
