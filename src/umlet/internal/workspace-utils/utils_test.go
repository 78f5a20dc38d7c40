package workspaceutils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client/ideclientmock"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/internal/fs/fsmock"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	assert.NotPanics(t, func() {
		New(Params{
			IdeGateway: ideclientmock.NewMockGateway(ctrl),
			Logger:     zap.NewNop().Sugar(),
			FS:         fsmock.NewMockUmletFS(ctrl),
		})
	})
}

func TestGetWorkspaceRoot(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*workspaceUtilsImpl, *fsmock.MockUmletFS, *ideclientmock.MockGateway) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockUmletFS(ctrl)
		ideClientMock := ideclientmock.NewMockGateway(ctrl)
		return &workspaceUtilsImpl{
			logger:     zap.NewNop().Sugar(),
			ideGateway: ideClientMock,
			fs:         fsMock,
		}, fsMock, ideClientMock
	}

	t.Run("first folder wins", func(t *testing.T) {
		c, fsMock, ideClientMock := setup(t)
		ideClientMock.EXPECT().WorkspaceFolders(gomock.Any()).Return([]protocol.WorkspaceFolder{
			{URI: "file:///home/user/diagrams"},
			{URI: "file:///home/user/other"},
		}, nil)
		fsMock.EXPECT().DirExists("/home/user/diagrams").Return(true, nil)

		result, err := c.GetWorkspaceRoot(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, "/home/user/diagrams", result)
	})

	t.Run("skips remote and missing folders", func(t *testing.T) {
		c, fsMock, ideClientMock := setup(t)
		ideClientMock.EXPECT().WorkspaceFolders(gomock.Any()).Return([]protocol.WorkspaceFolder{
			{URI: "vscode-remote://ssh-remote/home/user"},
			{URI: "file:///home/user/gone"},
			{URI: "file:///home/user/diagrams"},
		}, nil)
		fsMock.EXPECT().DirExists("/home/user/gone").Return(false, nil)
		fsMock.EXPECT().DirExists("/home/user/diagrams").Return(true, nil)

		result, err := c.GetWorkspaceRoot(ctx, nil)
		assert.NoError(t, err)
		assert.Equal(t, "/home/user/diagrams", result)
	})

	t.Run("current folders take precedence over fallback", func(t *testing.T) {
		c, fsMock, ideClientMock := setup(t)
		ideClientMock.EXPECT().WorkspaceFolders(gomock.Any()).Return([]protocol.WorkspaceFolder{{URI: "file:///home/user/added"}}, nil)
		fsMock.EXPECT().DirExists("/home/user/added").Return(true, nil)

		result, err := c.GetWorkspaceRoot(ctx, []protocol.WorkspaceFolder{{URI: "file:///home/user/diagrams"}})
		assert.NoError(t, err)
		assert.Equal(t, "/home/user/added", result)
	})

	t.Run("no workspace", func(t *testing.T) {
		c, _, ideClientMock := setup(t)
		ideClientMock.EXPECT().WorkspaceFolders(gomock.Any()).Return(nil, nil)

		_, err := c.GetWorkspaceRoot(ctx, []protocol.WorkspaceFolder{{URI: "file:///home/user/diagrams"}})
		assert.True(t, umleterrors.IsNoWorkspace(err))
	})

	t.Run("IDE query failure uses fallback", func(t *testing.T) {
		c, fsMock, ideClientMock := setup(t)
		ideClientMock.EXPECT().WorkspaceFolders(gomock.Any()).Return(nil, errors.New("error"))
		fsMock.EXPECT().DirExists("/home/user/diagrams").Return(true, nil)

		result, err := c.GetWorkspaceRoot(ctx, []protocol.WorkspaceFolder{{URI: "file:///home/user/diagrams"}})
		assert.NoError(t, err)
		assert.Equal(t, "/home/user/diagrams", result)
	})

	t.Run("IDE query failure without fallback", func(t *testing.T) {
		c, _, ideClientMock := setup(t)
		ideClientMock.EXPECT().WorkspaceFolders(gomock.Any()).Return(nil, errors.New("error"))

		_, err := c.GetWorkspaceRoot(ctx, nil)
		assert.True(t, umleterrors.IsNoWorkspace(err))
	})

	t.Run("stat failure", func(t *testing.T) {
		c, fsMock, ideClientMock := setup(t)
		ideClientMock.EXPECT().WorkspaceFolders(gomock.Any()).Return([]protocol.WorkspaceFolder{{URI: "file:///home/user/diagrams"}}, nil)
		fsMock.EXPECT().DirExists("/home/user/diagrams").Return(false, errors.New("permission denied"))

		_, err := c.GetWorkspaceRoot(ctx, nil)
		assert.True(t, umleterrors.IsNoWorkspace(err))
	})
}
