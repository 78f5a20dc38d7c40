// Package document stores the DocumentSession of every open custom editor panel.
package document

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	"github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"github.com/umlet/umlet-bridge/src/umlet/model"
	"go.lsp.dev/uri"
)

// Repository is an entity-scoped repository keyed by webview id.
type Repository interface {
	Get(ctx context.Context, webviewID uuid.UUID) (*entity.DocumentSession, error)
	GetAllForClient(ctx context.Context, clientID uuid.UUID) ([]*entity.DocumentSession, error)
	GetAllForURI(ctx context.Context, u uri.URI) ([]*entity.DocumentSession, error)
	Set(ctx context.Context, d *entity.DocumentSession) error
	Update(ctx context.Context, webviewID uuid.UUID, fn func(d *entity.DocumentSession) error) (*entity.DocumentSession, error)
	Delete(ctx context.Context, webviewID uuid.UUID) error
	DocumentCount(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[uuid.UUID]*model.DocumentSession
	stats    tally.Scope
}

// New returns a repository to a key-value DocumentSession data store.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[uuid.UUID]*model.DocumentSession),
		stats:    stats,
	}
}

// Get returns the DocumentSession rendered by the given webview.
func (r *repository) Get(ctx context.Context, webviewID uuid.UUID) (*entity.DocumentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.memstore[webviewID]
	if !ok {
		return nil, &errors.WebviewNotFoundError{WebviewID: webviewID}
	}
	return mapper.ModelToDocumentSession(d)
}

// GetAllForClient returns every DocumentSession opened through the given host connection.
func (r *repository) GetAllForClient(ctx context.Context, clientID uuid.UUID) ([]*entity.DocumentSession, error) {
	return r.filter(func(d *model.DocumentSession) bool {
		return d.ClientUUID == clientID
	})
}

// GetAllForURI returns every panel currently showing the given file.
func (r *repository) GetAllForURI(ctx context.Context, u uri.URI) ([]*entity.DocumentSession, error) {
	return r.filter(func(d *model.DocumentSession) bool {
		return d.URI == string(u)
	})
}

func (r *repository) filter(keep func(*model.DocumentSession) bool) ([]*entity.DocumentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := make([]*entity.DocumentSession, 0)
	for _, d := range r.memstore {
		if !keep(d) {
			continue
		}
		doc, err := mapper.ModelToDocumentSession(d)
		if err == nil {
			found = append(found, doc)
		}
	}
	return found, nil
}

// Set stores the DocumentSession under its webview id.
func (r *repository) Set(ctx context.Context, d *entity.DocumentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d == nil {
		return errors.New("can't save nil document session")
	}
	r.memstore[d.WebviewID] = mapper.DocumentSessionToModel(d)
	r.stats.Gauge("open_documents").Update(float64(len(r.memstore)))
	return nil
}

// Update applies fn to the stored DocumentSession while holding the lock and persists the result.
// If fn returns an error the stored value is left unchanged.
func (r *repository) Update(ctx context.Context, webviewID uuid.UUID, fn func(d *entity.DocumentSession) error) (*entity.DocumentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.memstore[webviewID]
	if !ok {
		return nil, &errors.WebviewNotFoundError{WebviewID: webviewID}
	}
	d, err := mapper.ModelToDocumentSession(m)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	r.memstore[webviewID] = mapper.DocumentSessionToModel(d)
	return d, nil
}

// Delete removes the DocumentSession of the given webview.
func (r *repository) Delete(ctx context.Context, webviewID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, webviewID)
	r.stats.Gauge("open_documents").Update(float64(len(r.memstore)))
	return nil
}

// DocumentCount returns the number of open panels.
func (r *repository) DocumentCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}
