// Package umletbridge implements the umlet-bridge service's JSON-RPC handlers.
package umletbridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	controller "github.com/umlet/umlet-bridge/src/umlet/controller/umlet-bridge"
	"github.com/umlet/umlet-bridge/src/umlet/internal/jsonrpcfx"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler accepts host connections and routes their requests to the bridge controller.
type Handler interface {
	jsonrpcfx.ConnectionManager

	// Drain waits until every asynchronous reply has been sent, or ctx is done.
	Drain(ctx context.Context) error
}

// Params are inbound parameters to initialize a new Handler.
type Params struct {
	fx.In

	Controller controller.Controller
	JSONRPC    jsonrpcfx.JSONRPCModule
	Lifecycle  fx.Lifecycle
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type handler struct {
	ctrl     controller.Controller
	logger   *zap.SugaredLogger
	stats    tally.Scope
	inflight sync.WaitGroup
}

// New constructs a new umlet-bridge Handler and registers it with the JSON-RPC inbound.
func New(p Params) (Handler, error) {
	h := &handler{
		ctrl:   p.Controller,
		logger: p.Logger.With("component", "router"),
		stats:  p.Stats.SubScope("json_rpc"),
	}
	if err := p.JSONRPC.RegisterConnectionManager(h); err != nil {
		return nil, fmt.Errorf("registering connection manager: %w", err)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: h.Drain,
	})
	return h, nil
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (h *handler) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := h.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	return &jsonRPCRouter{
		umletbridge: h.ctrl,
		uuid:        id,
		logger:      h.logger,
		stats:       h.stats,
		inflight:    &h.inflight,
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (h *handler) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = mapper.SessionUUIDToContext(ctx, id)
	if err := h.ctrl.EndSession(ctx, id); err != nil {
		h.logger.Warnw("ending session", zap.Stringer("uuid", id), zap.Error(err))
	}
}

func (h *handler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
