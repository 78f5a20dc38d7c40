package umletbridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umlet/umlet-bridge/src/umlet/controller/commands"
	"github.com/umlet/umlet-bridge/src/umlet/controller/umlet-bridge/umletbridgemock"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func TestExecuteCommand(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		result     interface{}
		err        error
		roundTrip  bool
		wantResult interface{}
	}{
		{
			name:    "forwarded command",
			command: commands.CommandZoomIn,
		},
		{
			name:    "forwarded command error",
			command: commands.CommandZoomOut,
			err:     errors.New("sample"),
		},
		{
			name:      "export png waits for configuration",
			command:   commands.CommandExportPng,
			roundTrip: true,
		},
		{
			name:      "new diagram waits for the host",
			command:   commands.CommandCreateNewDiagram,
			roundTrip: true,
		},
		{
			name:       "intercepted save",
			command:    commands.CommandSave,
			result:     entity.InterceptResult{Handled: true},
			roundTrip:  true,
			wantResult: entity.InterceptResult{Handled: true},
		},
		{
			name:      "intercepted save as error",
			command:   commands.CommandSaveAs,
			err:       errors.New("sample"),
			roundTrip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := umletbridgemock.NewMockController(ctrl)
			c.EXPECT().ExecuteCommand(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
					assert.Equal(t, tt.command, params.Command)
					return tt.result, tt.err
				})

			r := newTestRouter(c)
			replier, replies := newRecordingReplier()
			req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), protocol.MethodWorkspaceExecuteCommand, protocol.ExecuteCommandParams{Command: tt.command})

			assert.NoError(t, r.HandleReq(context.Background(), replier, req))
			if !tt.roundTrip {
				// Answered before HandleReq returned.
				assert.Len(t, replies, 1)
			}
			r.inflight.Wait()

			got := <-replies
			assert.Equal(t, tt.err, got.err)
			assert.Equal(t, tt.wantResult, got.result)
		})
	}

	t.Run("invalid params", func(t *testing.T) {
		r := newTestRouter(nil)
		req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), protocol.MethodWorkspaceExecuteCommand, "not an object")
		assert.Error(t, r.HandleReq(context.Background(), newMockReplier(), req))
	})
}
