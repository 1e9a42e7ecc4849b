package timer

import (
	"context"
	"time"

	"github.com/de-tools/focus-atlas/pkg/adapters"
	"github.com/de-tools/focus-atlas/pkg/models/domain"
	"github.com/de-tools/focus-atlas/pkg/models/store"
	sessionstore "github.com/de-tools/focus-atlas/pkg/store/sqlite/session"
	"github.com/google/uuid"
)

const maxSessionMinutes = 180

type StartRequest struct {
	Type     string
	Duration int // planned minutes
	TaskID   *string
}

// Service records timer runs. Sessions enter the store when a run starts
// and only count toward reports once marked complete.
type Service interface {
	Start(ctx context.Context, userID string, req StartRequest) (*domain.Session, error)
	Complete(ctx context.Context, userID, id string) error
}

type service struct {
	sessions sessionstore.Store
	now      func() time.Time
}

func NewService(sessions sessionstore.Store) Service {
	return &service{sessions: sessions, now: time.Now}
}

func (s *service) Start(ctx context.Context, userID string, req StartRequest) (*domain.Session, error) {
	if !domain.ValidSessionType(req.Type) {
		return nil, domain.Validationf("invalid session type %q", req.Type)
	}
	if req.Duration < 1 || req.Duration > maxSessionMinutes {
		return nil, domain.Validationf("duration must be between 1 and %d minutes", maxSessionMinutes)
	}

	rec := store.TimerSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		TaskID:    req.TaskID,
		Type:      req.Type,
		StartTime: s.now(),
		Duration:  req.Duration,
	}
	if err := s.sessions.Add(ctx, rec); err != nil {
		return nil, err
	}
	res := adapters.MapSessionStoreToDomain(rec)
	return &res, nil
}

func (s *service) Complete(ctx context.Context, userID, id string) error {
	return s.sessions.Complete(ctx, id, userID, s.now())
}
