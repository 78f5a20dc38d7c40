// Package editorprovider implements the custom editor for diagram files: one DocumentSession per
// webview panel, and the pointer to the panel that currently has focus.
package editorprovider

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	doclifecycle "github.com/umlet/umlet-bridge/src/umlet/controller/doc-lifecycle"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	ideclient "github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client"
	"github.com/umlet/umlet-bridge/src/umlet/internal/assetserver"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"github.com/umlet/umlet-bridge/src/umlet/repository/document"
	"github.com/umlet/umlet-bridge/src/umlet/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _nameKey = "editor-provider"

// Controller manages custom editor panels on behalf of the host.
type Controller interface {
	// Register announces the custom editor to the host. The asset server must already be serving.
	Register(ctx context.Context) error
	ResolveCustomEditor(ctx context.Context, params *entity.ResolveCustomEditorParams) (*entity.ResolveCustomEditorResult, error)
	// LoadDocument pushes the initial content into a resolved panel.
	LoadDocument(ctx context.Context, params *entity.ResolveCustomEditorParams) error
	DidChangeViewState(ctx context.Context, params *entity.DidChangeViewStateParams) error
	DidReceiveMessage(ctx context.Context, params *entity.WebviewMessageParams) error
	DisposeWebview(ctx context.Context, webviewID uuid.UUID) error
	// DisposeClient disposes every panel opened through a host connection.
	DisposeClient(ctx context.Context, clientID uuid.UUID) error

	// PostToActive sends a message to the focused panel, or returns NoActiveSessionError.
	PostToActive(ctx context.Context, message entity.WebviewMessage) error
	// Active returns the focused panel when it was opened through the calling host connection.
	// At most one panel is focused across all connections.
	Active(ctx context.Context) (*entity.DocumentSession, bool)
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Sessions     session.Repository
	Documents    document.Repository
	DocLifecycle doclifecycle.Controller
	AssetServer  assetserver.Server
	IdeGateway   ideclient.Gateway
	Logger       *zap.SugaredLogger
	Stats        tally.Scope
	Config       config.Provider
}

type controller struct {
	sessions     session.Repository
	documents    document.Repository
	docLifecycle doclifecycle.Controller
	assetServer  assetserver.Server
	ideGateway   ideclient.Gateway
	logger       *zap.SugaredLogger
	stats        tally.Scope
	editorConfig entity.EditorConfig

	// active is uuid.Nil when no panel has focus. Only focus and dispose handling write it.
	active   uuid.UUID
	activeMu sync.Mutex
}

// New creates a new Controller.
func New(p Params) (Controller, error) {
	cfg := entity.EditorConfig{
		ViewType:                entity.ViewTypeUmletEditor,
		FilenamePattern:         "*" + entity.DiagramExtension,
		RetainContextWhenHidden: true,
	}
	if err := p.Config.Get(entity.EditorConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.EditorConfigKey, err)
	}

	return &controller{
		sessions:     p.Sessions,
		documents:    p.Documents,
		docLifecycle: p.DocLifecycle,
		assetServer:  p.AssetServer,
		ideGateway:   p.IdeGateway,
		logger:       p.Logger.With("component", _nameKey),
		stats:        p.Stats.SubScope("editor_provider"),
		editorConfig: cfg,
	}, nil
}

func (c *controller) Register(ctx context.Context) error {
	if c.assetServer.Port() == 0 {
		return &umleterrors.StartupError{Reason: "asset server is not running"}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	return c.ideGateway.RegisterCapability(ctx, &protocol.RegistrationParams{
		Registrations: []protocol.Registration{
			{
				ID:     id.String(),
				Method: entity.MethodCustomEditorCapability,
				RegisterOptions: entity.CustomEditorRegistration{
					ViewType:                c.editorConfig.ViewType,
					FilenamePattern:         c.editorConfig.FilenamePattern,
					AssetURL:                c.assetServer.URL(),
					RetainContextWhenHidden: c.editorConfig.RetainContextWhenHidden,
				},
			},
		},
	})
}

func (c *controller) ResolveCustomEditor(ctx context.Context, params *entity.ResolveCustomEditorParams) (*entity.ResolveCustomEditorResult, error) {
	client, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}

	doc := mapper.ResolveParamsToDocumentSession(params, client)
	if c.assetServer.Port() == 0 {
		return nil, &umleterrors.StartupError{Reason: "asset server is not running"}
	}

	doc.State = entity.DocumentStateLoading
	if err := c.documents.Set(ctx, doc); err != nil {
		return nil, err
	}

	url := c.assetServer.URL()
	html, err := renderWebview(webviewPage{
		Title:     documentTitle(doc),
		URL:       url,
		Origin:    url,
		WebviewID: doc.WebviewID.String(),
	})
	if err != nil {
		// Do not leave a half-open session behind.
		return nil, multierr.Append(fmt.Errorf("rendering webview: %w", err), c.documents.Delete(ctx, doc.WebviewID))
	}

	if _, err := c.documents.Update(ctx, doc.WebviewID, func(d *entity.DocumentSession) error {
		d.State = entity.DocumentStateReady
		return nil
	}); err != nil {
		return nil, err
	}

	c.stats.Counter("resolved").Inc(1)
	c.logger.Infow("custom editor resolved", zap.Stringer("webviewId", doc.WebviewID), zap.String("uri", string(doc.URI)), zap.Int("open", c.openCount(ctx)))
	return &entity.ResolveCustomEditorResult{HTML: html, URL: url}, nil
}

func (c *controller) LoadDocument(ctx context.Context, params *entity.ResolveCustomEditorParams) error {
	return c.docLifecycle.Open(ctx, params.WebviewID, params.BackupURI)
}

func (c *controller) DidChangeViewState(ctx context.Context, params *entity.DidChangeViewStateParams) error {
	c.activeMu.Lock()
	defer c.activeMu.Unlock()

	if !params.Active {
		if _, err := c.documents.Update(ctx, params.WebviewID, func(d *entity.DocumentSession) error {
			d.IsActive = false
			return nil
		}); err != nil {
			return err
		}
		if c.active == params.WebviewID {
			c.active = uuid.Nil
		}
		return nil
	}

	if _, err := c.documents.Update(ctx, params.WebviewID, func(d *entity.DocumentSession) error {
		d.IsActive = true
		return nil
	}); err != nil {
		return err
	}

	if c.active != uuid.Nil && c.active != params.WebviewID {
		if _, err := c.documents.Update(ctx, c.active, func(d *entity.DocumentSession) error {
			d.IsActive = false
			return nil
		}); err != nil {
			c.logger.Warnw("clearing previous active panel", zap.Stringer("webviewId", c.active), zap.Error(err))
		}
	}
	c.active = params.WebviewID
	c.stats.Counter("focus_changes").Inc(1)
	return nil
}

func (c *controller) DidReceiveMessage(ctx context.Context, params *entity.WebviewMessageParams) error {
	switch params.Message.Type {
	case entity.WebviewEventContentChanged:
		return c.docLifecycle.DidChangeContent(ctx, params.WebviewID)
	case entity.WebviewEventSerializeResponse:
		return c.docLifecycle.ResolveSerialize(ctx, params.WebviewID, params.Message.RequestID, params.Message.Content)
	default:
		c.logger.Debugw("ignoring webview message", zap.Stringer("webviewId", params.WebviewID), zap.String("type", params.Message.Type))
		return nil
	}
}

func (c *controller) DisposeWebview(ctx context.Context, webviewID uuid.UUID) error {
	if _, err := c.documents.Update(ctx, webviewID, func(d *entity.DocumentSession) error {
		d.State = entity.DocumentStateDisposed
		d.IsActive = false
		return nil
	}); err != nil {
		c.logger.Debugw("dispose of untracked webview", zap.Stringer("webviewId", webviewID))
		return nil
	}

	c.activeMu.Lock()
	if c.active == webviewID {
		c.active = uuid.Nil
	}
	c.activeMu.Unlock()

	err := c.docLifecycle.Close(ctx, webviewID)
	err = multierr.Append(err, c.documents.Delete(ctx, webviewID))

	c.logger.Infow("custom editor disposed", zap.Stringer("webviewId", webviewID), zap.Int("open", c.openCount(ctx)))
	return err
}

func (c *controller) openCount(ctx context.Context) int {
	n, err := c.documents.DocumentCount(ctx)
	if err != nil {
		c.logger.Debugw("counting open panels", zap.Error(err))
		return -1
	}
	return n
}

func (c *controller) DisposeClient(ctx context.Context, clientID uuid.UUID) error {
	docs, err := c.documents.GetAllForClient(ctx, clientID)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		err = multierr.Append(err, c.DisposeWebview(ctx, doc.WebviewID))
	}
	return err
}

func (c *controller) PostToActive(ctx context.Context, message entity.WebviewMessage) error {
	doc, ok := c.Active(ctx)
	if !ok {
		return &umleterrors.NoActiveSessionError{Command: message.Command}
	}

	return c.ideGateway.PostMessage(mapper.SessionUUIDToContext(ctx, doc.ClientUUID), &entity.PostMessageParams{
		WebviewID: doc.WebviewID,
		Message:   message,
	})
}

func (c *controller) Active(ctx context.Context) (*entity.DocumentSession, bool) {
	c.activeMu.Lock()
	id := c.active
	c.activeMu.Unlock()

	if id == uuid.Nil {
		return nil, false
	}
	doc, err := c.documents.Get(ctx, id)
	if err != nil {
		return nil, false
	}
	caller, err := mapper.ContextToSessionUUID(ctx)
	if err != nil || caller != doc.ClientUUID {
		return nil, false
	}
	return doc, true
}

func documentTitle(doc *entity.DocumentSession) string {
	if p, err := mapper.URIToPath(doc.URI); err == nil {
		return filepath.Base(p)
	}
	return path.Base(string(doc.URI))
}
