// Package session stores one Session per connected host.
package session

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	"github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"github.com/umlet/umlet-bridge/src/umlet/model"
)

// Repository holds the state of every host connection.
type Repository interface {
	Get(context.Context, uuid.UUID) (*entity.Session, error)
	GetFromContext(ctx context.Context) (*entity.Session, error)
	Set(context.Context, *entity.Session) error
	// Update applies fn to the stored Session of the connection named by ctx.
	Update(ctx context.Context, fn func(s *entity.Session) error) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SessionCount(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*model.Session
	stats    tally.Scope
}

// New returns an in-memory Repository.
func New(stats tally.Scope) Repository {
	return &repository{
		sessions: make(map[uuid.UUID]*model.Session),
		stats:    stats,
	}
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *repository) GetFromContext(ctx context.Context) (*entity.Session, error) {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *repository) Set(ctx context.Context, s *entity.Session) error {
	if s == nil {
		return errors.New("can't save nil session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.UUID] = mapper.SessionToModel(s)
	r.reportConnected()
	return nil
}

func (r *repository) Update(ctx context.Context, fn func(s *entity.Session) error) (*entity.Session, error) {
	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	r.sessions[id] = mapper.SessionToModel(s)
	return s, nil
}

// Delete forgets the connection. Unknown ids are ignored.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	r.reportConnected()
	return nil
}

func (r *repository) SessionCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions), nil
}

func (r *repository) get(id uuid.UUID) (*entity.Session, error) {
	m, ok := r.sessions[id]
	if !ok {
		return nil, &errors.UUIDNotFoundError{UUID: id}
	}
	return mapper.ModelToSession(m)
}

func (r *repository) reportConnected() {
	r.stats.Gauge("connected_hosts").Update(float64(len(r.sessions)))
}
