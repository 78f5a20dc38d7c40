// Package entity contains the domain types for the umlet-bridge service.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the host connection UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// ViewTypeUmletEditor is the custom editor view type registered with the host.
const ViewTypeUmletEditor = "uxfCustoms.umletEditor"

// DiagramExtension is the file extension owned by the custom editor.
const DiagramExtension = ".uxf"

// Session represents a single host connection.
type Session struct {
	UUID             uuid.UUID                  `json:"uuid" zap:"uuid"`
	InitializeParams *protocol.InitializeParams `json:"-" zap:"-"`
	Conn             *jsonrpc2.Conn             `json:"-" zap:"-"`
	WorkspaceFolders []protocol.WorkspaceFolder `json:"workspaceFolders" zap:"workspaceFolders"`
	ClientName       string                     `json:"clientName" zap:"clientName"`
}

// DocumentState tracks where a DocumentSession is in its lifecycle.
type DocumentState int

const (
	// DocumentStateUninitialized is the state before the host asked to open the document.
	DocumentStateUninitialized DocumentState = iota
	// DocumentStateLoading indicates that the webview content is being pointed at the asset server.
	DocumentStateLoading
	// DocumentStateReady indicates that the webview is loaded and the message channel is live.
	DocumentStateReady
	// DocumentStateDisposed indicates that the webview was closed.
	DocumentStateDisposed
)

// String implements fmt.Stringer.
func (s DocumentState) String() string {
	switch s {
	case DocumentStateUninitialized:
		return "uninitialized"
	case DocumentStateLoading:
		return "loading"
	case DocumentStateReady:
		return "ready"
	case DocumentStateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// DocumentSession is the live pairing of one open file and one webview rendering it.
// A file opened in several panels has one DocumentSession per panel.
type DocumentSession struct {
	WebviewID  uuid.UUID     `json:"webviewId" zap:"webviewId"`
	ClientUUID uuid.UUID     `json:"clientUuid" zap:"clientUuid"`
	URI        uri.URI       `json:"uri" zap:"uri"`
	State      DocumentState `json:"state" zap:"state"`
	IsDirty    bool          `json:"isDirty" zap:"isDirty"`
	IsActive   bool          `json:"isActive" zap:"isActive"`

	// SavedContent holds the bytes last read from or written to disk.
	SavedContent []byte `json:"-" zap:"-"`
}

// InterceptResult is returned for host commands that the bridge may take over, such as save.
// Handled is false when the host should fall back to its default behavior.
type InterceptResult struct {
	Handled bool `json:"handled"`
}

// CustomEditorRegistration is sent to the host once the asset server port is known.
type CustomEditorRegistration struct {
	ViewType                string `json:"viewType"`
	FilenamePattern         string `json:"filenamePattern"`
	AssetURL                string `json:"assetUrl"`
	RetainContextWhenHidden bool   `json:"retainContextWhenHidden"`
}
