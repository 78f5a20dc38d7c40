// Package umletbridge implements the umlet-bridge business logic.
package umletbridge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/controller/commands"
	doclifecycle "github.com/umlet/umlet-bridge/src/umlet/controller/doc-lifecycle"
	editorprovider "github.com/umlet/umlet-bridge/src/umlet/controller/editor-provider"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	ideclient "github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client"
	"github.com/umlet/umlet-bridge/src/umlet/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"

	_serverName = "UMLet Bridge"
)

// Controller orchestrates the business logic for each request.
type Controller interface {
	// LSP lifecycle methods.
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Workspace related methods.
	ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error)

	// Custom editor methods.
	ResolveCustomEditor(ctx context.Context, params *entity.ResolveCustomEditorParams) (*entity.ResolveCustomEditorResult, error)
	LoadDocument(ctx context.Context, params *entity.ResolveCustomEditorParams) error
	DidChangeViewState(ctx context.Context, params *entity.DidChangeViewStateParams) error
	DidDisposeWebview(ctx context.Context, params *entity.DidDisposeWebviewParams) error
	WebviewMessage(ctx context.Context, params *entity.WebviewMessageParams) error

	// Custom document methods.
	SaveCustomDocument(ctx context.Context, params *entity.CustomDocumentParams) error
	SaveCustomDocumentAs(ctx context.Context, params *entity.SaveCustomDocumentAsParams) error
	RevertCustomDocument(ctx context.Context, params *entity.CustomDocumentParams) error
	BackupCustomDocument(ctx context.Context, params *entity.BackupCustomDocumentParams) (*entity.BackupResult, error)

	// Custom methods for use within this service.
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, id uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner fx.Shutdowner
	Lifecycle  fx.Lifecycle
	Sessions   session.Repository
	IdeGateway ideclient.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Config     config.Provider

	EditorProvider editorprovider.Controller
	DocLifecycle   doclifecycle.Controller
	Commands       commands.Controller
}

type controller struct {
	sessions   session.Repository
	shutdowner fx.Shutdowner
	logger     *zap.SugaredLogger
	stats      tally.Scope
	ideGateway ideclient.Gateway

	editorProvider editorprovider.Controller
	docLifecycle   doclifecycle.Controller
	commands       commands.Controller

	fullShutdown       bool
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration
	idleStop           chan struct{}
	wg                 sync.WaitGroup
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil || timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}

	c := &controller{
		sessions:       p.Sessions,
		shutdowner:     p.Shutdowner,
		logger:         p.Logger,
		stats:          p.Stats.SubScope("umlet_bridge"),
		ideGateway:     p.IdeGateway,
		editorProvider: p.EditorProvider,
		docLifecycle:   p.DocLifecycle,
		commands:       p.Commands,

		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,
	}
	c.refreshIdleTimer(context.Background())

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			c.stopIdleTimer()
			return nil
		},
	})

	return c, nil
}

// refreshIdleTimer ensures that the service shuts down after a defined inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		c.idleStop = make(chan struct{})
		c.wg.Add(1)
		go c.awaitIdle(c.idleTimer, c.idleStop)
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}

func (c *controller) awaitIdle(timer *time.Timer, stop <-chan struct{}) {
	defer c.wg.Done()

	select {
	case <-timer.C:
		c.logger.Info("Shutdown signal received.")
		c.stats.Counter("idle_shutdown").Inc(1)
		if err := c.shutdowner.Shutdown(); err != nil {
			c.logger.Errorf("requesting shutdown: %s", err)
		}
	case <-stop:
	}
}

// stopIdleTimer releases the idle goroutine when the application stops for another reason.
func (c *controller) stopIdleTimer() {
	c.idleTimerMu.Lock()
	if c.idleStop != nil {
		select {
		case <-c.idleStop:
		default:
			close(c.idleStop)
		}
	}
	c.idleTimerMu.Unlock()
	c.wg.Wait()
}
