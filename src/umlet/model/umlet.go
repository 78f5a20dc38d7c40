package model

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Session is the repository layer model for an individual host connection.
type Session struct {
	UUID             uuid.UUID
	InitializeParams *protocol.InitializeParams
	Conn             *jsonrpc2.Conn
	WorkspaceFolders []protocol.WorkspaceFolder
	ClientName       string
}

// DocumentSession is the repository layer model for an open file/webview pair.
type DocumentSession struct {
	WebviewID    uuid.UUID
	ClientUUID   uuid.UUID
	URI          string
	State        int
	IsDirty      bool
	IsActive     bool
	SavedContent []byte
}
