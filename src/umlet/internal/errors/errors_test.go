package errors

import (
	"context"
	stderr "errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsBadRequest(t *testing.T) {
	nb := New("not bad request")
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "no uuid on wire",
			err:  NoUUIDOnWireError,
			want: true,
		},
		{
			name: "no uri on wire",
			err:  fmt.Errorf("resolving editor: %w", NoURIOnWireError),
			want: true,
		},
		{
			name: "not bad request",
			err:  nb,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsBadRequest(tt.err))
		})
	}
}

func TestUUIDNotFound(t *testing.T) {
	id := uuid.Must(uuid.FromString("4d8c6b36-4e9b-4469-8a05-2c60b9671590"))
	err := &UUIDNotFoundError{UUID: id}
	msg := `UUID "4d8c6b36-4e9b-4469-8a05-2c60b9671590" not found`
	assert.Equal(t, msg, err.Error())
}

func TestIsUUIDNotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	tests := []struct {
		name     string
		err      error
		wantOK   bool
		wantUUID uuid.UUID
	}{
		{
			name:     "uuid not found",
			err:      &UUIDNotFoundError{UUID: id},
			wantOK:   true,
			wantUUID: id,
		},
		{
			name:     "random error",
			err:      New("err"),
			wantOK:   false,
			wantUUID: uuid.Nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			id, ok := NotFoundUUID(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantUUID, id)
		})
	}
}

func TestCustomErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "startup",
			err:  &StartupError{Reason: "missing directory"},
		},
		{
			name: "startup with cause",
			err:  &StartupError{Reason: "bind", Err: New("address in use")},
		},
		{
			name: "no workspace",
			err:  &NoWorkspaceError{},
		},
		{
			name: "serialization timeout",
			err:  &SerializationTimeoutError{Timeout: time.Second},
		},
		{
			name: "session disposed",
			err:  &SessionDisposedError{},
		},
		{
			name: "no active session",
			err:  &NoActiveSessionError{Command: "umlet.zoomIn"},
		},
		{
			name: "webview not found",
			err:  &WebviewNotFoundError{},
		},
		{
			name: "file exists",
			err:  &FileExistsError{URI: "file:///tmp/a.uxf"},
		},
		{
			name: "no session",
			err:  &NoSessionFoundError{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.True(t, len(tt.err.Error()) > 0)
		})
	}
}

func TestClassifiers(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("outer: %w", err) }

	assert.True(t, IsRoutingNoop(wrap(&NoActiveSessionError{})))
	assert.False(t, IsRoutingNoop(New("other")))

	assert.True(t, IsNoWorkspace(wrap(&NoWorkspaceError{})))
	assert.False(t, IsNoWorkspace(New("other")))

	assert.True(t, IsStartup(wrap(&StartupError{})))
	assert.False(t, IsStartup(New("other")))

	assert.True(t, IsSerializationTimeout(wrap(&SerializationTimeoutError{})))
	assert.False(t, IsSerializationTimeout(&SessionDisposedError{}))
	assert.True(t, IsSessionDisposed(wrap(&SessionDisposedError{})))
	assert.False(t, IsSessionDisposed(&SerializationTimeoutError{}))
}

func TestUnwrapToContextErrors(t *testing.T) {
	assert.True(t, stderr.Is(&SerializationTimeoutError{}, context.DeadlineExceeded))
	assert.True(t, stderr.Is(&SessionDisposedError{}, context.Canceled))

	cause := New("bind failed")
	assert.True(t, stderr.Is(&StartupError{Reason: "listen", Err: cause}, cause))
}
