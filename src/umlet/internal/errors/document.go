package errors

import (
	"context"
	stderr "errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"go.lsp.dev/uri"
)

// StartupError indicates that the asset server could not be brought up.
// It is fatal to activation: the custom editor is never registered.
type StartupError struct {
	Reason string
	Err    error
}

// Error is an implementation of the error interface.
func (e *StartupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("asset server startup failed: %s", e.Reason)
	}
	return fmt.Sprintf("asset server startup failed: %s: %v", e.Reason, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StartupError) Unwrap() error {
	return e.Err
}

// NoWorkspaceError indicates that an action requiring a workspace folder was invoked without one.
type NoWorkspaceError struct{}

// Error is an implementation of the error interface.
func (e *NoWorkspaceError) Error() string {
	return "no folder or workspace is currently open"
}

// SerializationTimeoutError indicates that a webview did not answer a serialize request in time.
type SerializationTimeoutError struct {
	WebviewID uuid.UUID
	Timeout   time.Duration
}

// Error is an implementation of the error interface.
func (e *SerializationTimeoutError) Error() string {
	return fmt.Sprintf("webview %q did not return diagram content within %s", e.WebviewID, e.Timeout)
}

// Unwrap allows matching with context.DeadlineExceeded.
func (e *SerializationTimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// SessionDisposedError indicates that a pending round trip was abandoned because its webview was closed.
type SessionDisposedError struct {
	WebviewID uuid.UUID
}

// Error is an implementation of the error interface.
func (e *SessionDisposedError) Error() string {
	return fmt.Sprintf("webview %q was closed before it responded", e.WebviewID)
}

// Unwrap allows matching with context.Canceled.
func (e *SessionDisposedError) Unwrap() error {
	return context.Canceled
}

// NoActiveSessionError indicates that a command targeting the active document fired while none is active.
type NoActiveSessionError struct {
	Command string
}

// Error is an implementation of the error interface.
func (e *NoActiveSessionError) Error() string {
	return fmt.Sprintf("no active diagram to receive %q", e.Command)
}

// FileExistsError indicates that a new document would overwrite an existing file.
type FileExistsError struct {
	URI uri.URI
}

// Error is an implementation of the error interface.
func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file %q already exists", e.URI)
}

// IsRoutingNoop reports whether the error only means that there was nobody to route a command to.
func IsRoutingNoop(e error) bool {
	var na *NoActiveSessionError
	return stderr.As(e, &na)
}

// IsNoWorkspace reports whether NoWorkspaceError is part of the error chain.
func IsNoWorkspace(e error) bool {
	var nw *NoWorkspaceError
	return stderr.As(e, &nw)
}

// IsStartup reports whether StartupError is part of the error chain.
func IsStartup(e error) bool {
	var se *StartupError
	return stderr.As(e, &se)
}

// IsSerializationTimeout reports whether SerializationTimeoutError is part of the error chain.
func IsSerializationTimeout(e error) bool {
	var st *SerializationTimeoutError
	return stderr.As(e, &st)
}

// IsSessionDisposed reports whether SessionDisposedError is part of the error chain.
func IsSessionDisposed(e error) bool {
	var sd *SessionDisposedError
	return stderr.As(e, &sd)
}
