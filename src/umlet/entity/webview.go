package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/uri"
)

// Custom JSON-RPC methods exchanged with the host shim.
const (
	// Host to bridge.
	MethodRequestFullShutdown    = "umlet/requestFullShutdown"
	MethodResolveCustomEditor    = "umlet/resolveCustomEditor"
	MethodDidChangeViewState     = "umlet/didChangeViewState"
	MethodDidDisposeWebview      = "umlet/didDisposeWebview"
	MethodWebviewMessage         = "umlet/webviewMessage"
	MethodSaveCustomDocument     = "umlet/saveCustomDocument"
	MethodSaveCustomDocumentAs   = "umlet/saveCustomDocumentAs"
	MethodRevertCustomDocument   = "umlet/revertCustomDocument"
	MethodBackupCustomDocument   = "umlet/backupCustomDocument"
	MethodCustomEditorCapability = "umlet/customEditor"

	// Bridge to host.
	MethodPostMessage             = "umlet/postMessage"
	MethodDidChangeCustomDocument = "umlet/didChangeCustomDocument"
)

// Commands understood by the webview.
const (
	WebviewCommandExportPng        = "requestExportPng"
	WebviewCommandExportPdf        = "requestExportPdf"
	WebviewCommandZoomIn           = "zoomIn"
	WebviewCommandZoomOut          = "zoomOut"
	WebviewCommandZoomReset        = "zoomReset"
	WebviewCommandSetContent       = "setContent"
	WebviewCommandRequestSerialize = "requestSerialize"
)

// Events reported by the webview.
const (
	WebviewEventContentChanged    = "contentChanged"
	WebviewEventSerializeResponse = "serializeResponse"
)

// WebviewMessage is a host to webview message.
type WebviewMessage struct {
	Command   string      `json:"command"`
	Text      interface{} `json:"text,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// WebviewEvent is a webview to host message.
type WebviewEvent struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`
	Content   string `json:"content,omitempty"`
}

// PostMessageParams wraps a WebviewMessage with the webview it is addressed to.
type PostMessageParams struct {
	WebviewID uuid.UUID      `json:"webviewId"`
	Message   WebviewMessage `json:"message"`
}

// WebviewMessageParams wraps a WebviewEvent with the webview it came from.
type WebviewMessageParams struct {
	WebviewID uuid.UUID    `json:"webviewId"`
	Message   WebviewEvent `json:"message"`
}

// ResolveCustomEditorParams are sent by the host when it opens a watched file in a new panel.
type ResolveCustomEditorParams struct {
	WebviewID uuid.UUID `json:"webviewId"`
	URI       uri.URI   `json:"uri"`
	// BackupURI is set when the host restores a panel from a hot-exit backup.
	BackupURI uri.URI `json:"backupUri,omitempty"`
}

// ResolveCustomEditorResult tells the host how to populate the webview.
type ResolveCustomEditorResult struct {
	HTML string `json:"html"`
	URL  string `json:"url"`
}

// DidChangeViewStateParams report a focus change of a panel.
type DidChangeViewStateParams struct {
	WebviewID uuid.UUID `json:"webviewId"`
	Active    bool      `json:"active"`
	Visible   bool      `json:"visible"`
}

// DidDisposeWebviewParams report that a panel was closed.
type DidDisposeWebviewParams struct {
	WebviewID uuid.UUID `json:"webviewId"`
}

// CustomDocumentParams identify the document a lifecycle request applies to.
type CustomDocumentParams struct {
	WebviewID uuid.UUID `json:"webviewId"`
}

// SaveCustomDocumentAsParams target a new location for a document.
type SaveCustomDocumentAsParams struct {
	WebviewID   uuid.UUID `json:"webviewId"`
	Destination uri.URI   `json:"destination"`
}

// BackupCustomDocumentParams point at a host-managed backup location.
type BackupCustomDocumentParams struct {
	WebviewID   uuid.UUID `json:"webviewId"`
	Destination uri.URI   `json:"destination"`
}

// BackupResult identifies a written backup so the host can restore or delete it.
type BackupResult struct {
	ID string `json:"id"`
}

// DidChangeCustomDocumentParams notify the host that a document has unsaved changes.
type DidChangeCustomDocumentParams struct {
	WebviewID uuid.UUID `json:"webviewId"`
	URI       uri.URI   `json:"uri"`
}
