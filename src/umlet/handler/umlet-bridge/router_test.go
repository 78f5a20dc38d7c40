package umletbridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/controller/umlet-bridge/umletbridgemock"
	"github.com/umlet/umlet-bridge/src/umlet/factory"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func TestHandleReq(t *testing.T) {
	ctx := context.Background()
	m := newTestRouter(nil)

	request, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), "sampleMethod", []string{"val1", "val2"})
	err := m.HandleReq(ctx, newMockReplier(), request)
	assert.Error(t, err)
}

func TestHandleReqCountsRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := umletbridgemock.NewMockController(ctrl)
	c.EXPECT().Shutdown(gomock.Any()).Return(nil)

	scope := tally.NewTestScope("testing", nil)
	r := newTestRouter(c)
	r.stats = scope

	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), protocol.MethodShutdown, nil)
	assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), req))
	assert.Equal(t, int64(1), scope.Snapshot().Counters()["testing.requests+method=shutdown"].Value())
}

func TestUUID(t *testing.T) {
	sampleUUID := factory.UUID()
	m := jsonRPCRouter{uuid: sampleUUID}
	assert.Equal(t, sampleUUID, m.UUID())
}

func TestParamsError(t *testing.T) {
	var rpcErr *jsonrpc2.Error
	assert.True(t, errors.As(paramsError(umleterrors.NoUUIDOnWireError), &rpcErr))
	assert.Equal(t, jsonrpc2.InvalidParams, rpcErr.Code)

	other := errors.New("sample")
	assert.Equal(t, other, paramsError(other))
}
