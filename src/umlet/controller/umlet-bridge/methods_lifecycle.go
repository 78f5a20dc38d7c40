package umletbridge

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
)

// Initialize will store information about a new connection and advertise the commands this bridge handles.
func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s, err := c.sessions.Update(ctx, func(s *entity.Session) error {
		s.InitializeParams = params
		if params != nil {
			s.WorkspaceFolders = params.WorkspaceFolders
			if params.ClientInfo != nil {
				s.ClientName = params.ClientInfo.Name
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording host details: %w", err)
	}

	c.logger.Infow("host initialized", "client", s.ClientName, "workspaceFolders", len(s.WorkspaceFolders))
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
				Commands: c.commands.Commands(),
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name: _serverName,
		},
	}, nil
}

// Initialized registers the custom editor with the host once the connection is ready.
func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	if err := c.editorProvider.Register(ctx); err != nil {
		if umleterrors.IsStartup(err) {
			if showErr := c.ideGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
				Message: fmt.Sprintf("UMLet editor is unavailable: %s", err),
				Type:    protocol.MessageTypeError,
			}); showErr != nil {
				c.logger.Warnf("showing startup failure: %v", showErr)
			}
		}
		return fmt.Errorf("registering custom editor: %w", err)
	}
	return nil
}

// Shutdown is sent just before Exit to indicate that the session will exit.
func (c *controller) Shutdown(ctx context.Context) error {
	c.logger.Debug("shutdown requested")
	return nil
}

// Exit will be used to either clean up from an individual connection, or shutdown the whole server.
func (c *controller) Exit(ctx context.Context) error {
	if c.fullShutdown {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimerMu.Lock()
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}
	return c.EndSession(ctx, s.UUID)
}

// RequestFullShutdown will set the controller to treat subsequent Shutdown and Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.fullShutdown = true
	return nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	s := mapper.UUIDToSession(id, conn)
	if err := c.ideGateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.sessions.Set(ctx, s); err != nil {
		return uuid.Nil, err
	}
	c.stats.Counter("sessions_started").Inc(1)
	return id, nil
}

// EndSession disposes every panel opened through the connection, then forgets the connection.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	if err := c.editorProvider.DisposeClient(ctx, id); err != nil {
		c.logger.Errorf("disposing panels of session %q: %s", id, err)
	}

	err := c.ideGateway.DeregisterClient(ctx, id)
	if err != nil {
		c.logger.Error(err)
	}

	return multierr.Append(err, c.sessions.Delete(ctx, id))
}
