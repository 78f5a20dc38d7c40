// Package commands implements the host commands contributed by the bridge.
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/uber-go/tally"
	doclifecycle "github.com/umlet/umlet-bridge/src/umlet/controller/doc-lifecycle"
	editorprovider "github.com/umlet/umlet-bridge/src/umlet/controller/editor-provider"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	ideclient "github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client"
	"github.com/umlet/umlet-bridge/src/umlet/internal/clock"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/internal/fs"
	workspaceutils "github.com/umlet/umlet-bridge/src/umlet/internal/workspace-utils"
	"github.com/umlet/umlet-bridge/src/umlet/repository/session"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Command identifiers.
const (
	CommandExportPng        = "umlet.exportPng"
	CommandExportPdf        = "umlet.exportPdf"
	CommandZoomIn           = "umlet.zoomIn"
	CommandZoomOut          = "umlet.zoomOut"
	CommandZoomReset        = "umlet.zoomReset"
	CommandCreateNewDiagram = "umlet.createNewDiagram"

	// Host save commands, taken over while a diagram has focus.
	CommandSave   = "workbench.action.files.save"
	CommandSaveAs = "workbench.action.files.saveAs"
)

const (
	_nameKey         = "commands"
	_diagramTimeFmt  = "2006-01-02 15-04-05"
	_errNoWorkspace  = "Unable to create new .uxf file, since there is currently no folder/workspace opened. Please open a folder/workspace and try again!"
	_defaultScaleKey = "umlet.exportScale"
)

// Controller executes host commands.
type Controller interface {
	// Commands lists every command id handled by Execute.
	Commands() []string
	Execute(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error)
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Sessions       session.Repository
	EditorProvider editorprovider.Controller
	DocLifecycle   doclifecycle.Controller
	IdeGateway     ideclient.Gateway
	WorkspaceUtils workspaceutils.WorkspaceUtils
	FS             fs.UmletFS
	Clock          clock.Clock
	Logger         *zap.SugaredLogger
	Stats          tally.Scope
	Config         config.Provider
}

type handlerFunc func(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error)

type controller struct {
	sessions       session.Repository
	editorProvider editorprovider.Controller
	docLifecycle   doclifecycle.Controller
	ideGateway     ideclient.Gateway
	workspaceUtils workspaceutils.WorkspaceUtils
	fs             fs.UmletFS
	clock          clock.Clock
	logger         *zap.SugaredLogger
	stats          tally.Scope
	cfg            entity.CommandsConfig

	handlers map[string]handlerFunc
}

// New creates a new Controller.
func New(p Params) (Controller, error) {
	cfg := entity.CommandsConfig{
		ExportScaleSection: _defaultScaleKey,
		DefaultExportScale: 1,
	}
	if err := p.Config.Get(entity.CommandsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.CommandsConfigKey, err)
	}

	c := &controller{
		sessions:       p.Sessions,
		editorProvider: p.EditorProvider,
		docLifecycle:   p.DocLifecycle,
		ideGateway:     p.IdeGateway,
		workspaceUtils: p.WorkspaceUtils,
		fs:             p.FS,
		clock:          p.Clock,
		logger:         p.Logger.With("component", _nameKey),
		stats:          p.Stats.SubScope("commands"),
		cfg:            cfg,
	}

	c.handlers = map[string]handlerFunc{
		CommandExportPng:        c.exportPng,
		CommandExportPdf:        c.forward(entity.WebviewCommandExportPdf),
		CommandZoomIn:           c.forward(entity.WebviewCommandZoomIn),
		CommandZoomOut:          c.forward(entity.WebviewCommandZoomOut),
		CommandZoomReset:        c.forward(entity.WebviewCommandZoomReset),
		CommandCreateNewDiagram: c.createNewDiagram,
		CommandSave:             c.save,
		CommandSaveAs:           c.saveAs,
	}
	return c, nil
}

func (c *controller) Commands() []string {
	ids := make([]string, 0, len(c.handlers))
	for id := range c.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *controller) Execute(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	handler, ok := c.handlers[params.Command]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}

	c.stats.Tagged(map[string]string{"command": params.Command}).Counter("invoked").Inc(1)
	return handler(ctx, params)
}

// forward returns a handler that posts a bare webview command to the focused diagram.
func (c *controller) forward(command string) handlerFunc {
	return func(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
		return nil, c.postToActive(ctx, params.Command, entity.WebviewMessage{Command: command})
	}
}

func (c *controller) exportPng(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	if _, ok := c.editorProvider.Active(ctx); !ok {
		c.noop(params.Command)
		return nil, nil
	}

	return nil, c.postToActive(ctx, params.Command, entity.WebviewMessage{
		Command: entity.WebviewCommandExportPng,
		Text:    c.exportScale(ctx),
	})
}

// exportScale reads the scale from the host settings at invocation time.
func (c *controller) exportScale(ctx context.Context) float64 {
	values, err := c.ideGateway.Configuration(ctx, &protocol.ConfigurationParams{
		Items: []protocol.ConfigurationItem{{Section: c.cfg.ExportScaleSection}},
	})
	if err != nil {
		c.logger.Warnw("reading export scale from host", zap.Error(err))
		return c.cfg.DefaultExportScale
	}
	if len(values) == 0 {
		return c.cfg.DefaultExportScale
	}

	// Settings arrive as decoded JSON, so numbers are always float64.
	if v, ok := values[0].(float64); ok && v > 0 {
		return v
	}
	return c.cfg.DefaultExportScale
}

func (c *controller) postToActive(ctx context.Context, command string, message entity.WebviewMessage) error {
	err := c.editorProvider.PostToActive(ctx, message)
	if umleterrors.IsRoutingNoop(err) {
		c.noop(command)
		return nil
	}
	return err
}

func (c *controller) noop(command string) {
	c.stats.Counter("noop").Inc(1)
	c.logger.Infow("no active diagram, command ignored", zap.String("command", command))
}

func (c *controller) createNewDiagram(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	// Folders announced at initialize stand in when the host cannot be asked.
	var folders []protocol.WorkspaceFolder
	if s, err := c.sessions.GetFromContext(ctx); err == nil {
		folders = s.WorkspaceFolders
	}
	root, err := c.workspaceUtils.GetWorkspaceRoot(ctx, folders)
	if umleterrors.IsNoWorkspace(err) {
		c.logger.Infow("cannot create diagram without workspace", zap.Error(err))
		return nil, c.ideGateway.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: _errNoWorkspace,
		})
	}
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("Diagram %s%s", c.clock.Now().Format(_diagramTimeFmt), entity.DiagramExtension)
	path := filepath.Join(root, name)
	target := uri.File(path)
	if err := c.fs.CreateNew(path); err != nil {
		if os.IsExist(err) {
			return nil, &umleterrors.FileExistsError{URI: target}
		}
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}

	// The host decides which editor opens the file; another .uxf editor may win.
	res, err := c.ideGateway.ShowDocument(ctx, &protocol.ShowDocumentParams{
		URI:       target,
		TakeFocus: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	if res != nil && !res.Success {
		c.logger.Warnw("host did not open the new diagram", zap.String("uri", string(target)))
	}

	c.logger.Infow("created diagram", zap.String("path", path))
	return nil, nil
}

func (c *controller) save(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	doc, ok := c.editorProvider.Active(ctx)
	if !ok {
		return entity.InterceptResult{Handled: false}, nil
	}

	if err := c.docLifecycle.Save(ctx, doc.WebviewID); err != nil {
		return nil, err
	}
	return entity.InterceptResult{Handled: true}, nil
}

func (c *controller) saveAs(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	doc, ok := c.editorProvider.Active(ctx)
	if !ok {
		return entity.InterceptResult{Handled: false}, nil
	}

	target, ok := targetArgument(params.Arguments)
	if !ok {
		// Without a destination the host asks the user and comes back through saveCustomDocumentAs.
		return entity.InterceptResult{Handled: false}, nil
	}

	if err := c.docLifecycle.SaveAs(ctx, doc.WebviewID, target); err != nil {
		return nil, err
	}
	return entity.InterceptResult{Handled: true}, nil
}

func targetArgument(args []interface{}) (uri.URI, bool) {
	if len(args) == 0 {
		return "", false
	}
	s, ok := args[0].(string)
	if !ok || s == "" {
		return "", false
	}
	return uri.URI(s), true
}
