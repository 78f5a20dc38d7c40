package workspaceutils

import (
	"context"

	ideclient "github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client"
	"github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/internal/fs"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a new WorkspaceUtils.
var Module = fx.Provide(New)

// WorkspaceUtils is a utility interface for getting workspace related information.
type WorkspaceUtils interface {
	// GetWorkspaceRoot returns the local path of the first usable workspace folder the IDE reports.
	// The fallback folders are searched instead when the IDE cannot be queried.
	GetWorkspaceRoot(ctx context.Context, fallback []protocol.WorkspaceFolder) (string, error)
}

// Params are the parameters required to create a new WorkspaceUtils.
type Params struct {
	fx.In

	IdeGateway ideclient.Gateway
	Logger     *zap.SugaredLogger
	FS         fs.UmletFS
}

type workspaceUtilsImpl struct {
	ideGateway ideclient.Gateway
	logger     *zap.SugaredLogger
	fs         fs.UmletFS
}

// New creates a new WorkspaceUtils.
func New(p Params) WorkspaceUtils {
	return &workspaceUtilsImpl{
		ideGateway: p.IdeGateway,
		logger:     p.Logger,
		fs:         p.FS,
	}
}

func (c *workspaceUtilsImpl) GetWorkspaceRoot(ctx context.Context, fallback []protocol.WorkspaceFolder) (string, error) {
	workspaceFolders, err := c.ideGateway.WorkspaceFolders(ctx)
	if err != nil {
		c.logger.Warnw("unable to query workspace folders", "fallback", len(fallback), zap.Error(err))
		workspaceFolders = fallback
	}

	for _, folder := range workspaceFolders {
		// code-workspace files may contain remote or nonexistent folders, skip those.
		path, err := mapper.URIToPath(uri.URI(folder.URI))
		if err != nil {
			c.logger.Debugw("skipping workspace folder", "folder", folder.URI, zap.Error(err))
			continue
		}

		exists, err := c.fs.DirExists(path)
		if err != nil || !exists {
			c.logger.Debugw("skipping missing workspace folder", "folder", path)
			continue
		}
		return path, nil
	}

	return "", &errors.NoWorkspaceError{}
}
