package umletbridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umlet/umlet-bridge/src/umlet/controller/umlet-bridge/umletbridgemock"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	"github.com/umlet/umlet-bridge/src/umlet/factory"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"
)

func TestSaveCustomDocument(t *testing.T) {
	webviewID := factory.UUID()

	t.Run("replies once written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := umletbridgemock.NewMockController(ctrl)

		// The save blocks until the webview answers, which arrives on the same read loop.
		serialized := make(chan struct{})
		c.EXPECT().SaveCustomDocument(gomock.Any(), &entity.CustomDocumentParams{WebviewID: webviewID}).DoAndReturn(
			func(ctx context.Context, params *entity.CustomDocumentParams) error {
				<-serialized
				return nil
			})
		c.EXPECT().WebviewMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *entity.WebviewMessageParams) error {
				close(serialized)
				return nil
			})

		r := newTestRouter(c)
		replier, replies := newRecordingReplier()
		save, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), entity.MethodSaveCustomDocument, entity.CustomDocumentParams{WebviewID: webviewID})
		assert.NoError(t, r.HandleReq(context.Background(), replier, save))

		response, _ := jsonrpc2.NewNotification(entity.MethodWebviewMessage, entity.WebviewMessageParams{
			WebviewID: webviewID,
			Message:   entity.WebviewEvent{Type: entity.WebviewEventSerializeResponse, RequestID: "1", Content: "<diagram/>"},
		})
		assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), response))
		r.inflight.Wait()

		assert.NoError(t, (<-replies).err)
	})

	t.Run("timeout is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := umletbridgemock.NewMockController(ctrl)
		timeout := &umleterrors.SerializationTimeoutError{WebviewID: webviewID}
		c.EXPECT().SaveCustomDocument(gomock.Any(), gomock.Any()).Return(timeout)

		r := newTestRouter(c)
		replier, replies := newRecordingReplier()
		req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), entity.MethodSaveCustomDocument, entity.CustomDocumentParams{WebviewID: webviewID})
		assert.NoError(t, r.HandleReq(context.Background(), replier, req))
		r.inflight.Wait()

		assert.Equal(t, timeout, (<-replies).err)
	})

	t.Run("missing webview id", func(t *testing.T) {
		r := newTestRouter(nil)
		req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), entity.MethodSaveCustomDocument, entity.CustomDocumentParams{})
		assert.Error(t, r.HandleReq(context.Background(), newMockReplier(), req))
	})
}

func TestSaveCustomDocumentAs(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := umletbridgemock.NewMockController(ctrl)
	params := entity.SaveCustomDocumentAsParams{WebviewID: factory.UUID(), Destination: uri.File("/tmp/copy.uxf")}
	c.EXPECT().SaveCustomDocumentAs(gomock.Any(), &params).Return(errors.New("sample"))

	r := newTestRouter(c)
	replier, replies := newRecordingReplier()
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), entity.MethodSaveCustomDocumentAs, params)
	assert.NoError(t, r.HandleReq(context.Background(), replier, req))
	r.inflight.Wait()

	assert.Error(t, (<-replies).err)

	t.Run("missing destination", func(t *testing.T) {
		r := newTestRouter(nil)
		req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), entity.MethodSaveCustomDocumentAs, entity.SaveCustomDocumentAsParams{WebviewID: factory.UUID()})
		assert.Error(t, r.HandleReq(context.Background(), newMockReplier(), req))
	})
}

func TestRevertCustomDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := umletbridgemock.NewMockController(ctrl)
	params := entity.CustomDocumentParams{WebviewID: factory.UUID()}
	c.EXPECT().RevertCustomDocument(gomock.Any(), &params).Return(nil)

	r := newTestRouter(c)
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), entity.MethodRevertCustomDocument, params)
	assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), req))
}

func TestBackupCustomDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := umletbridgemock.NewMockController(ctrl)
	params := entity.BackupCustomDocumentParams{WebviewID: factory.UUID(), Destination: uri.File("/tmp/backup/a.uxf")}
	want := &entity.BackupResult{ID: string(params.Destination)}
	c.EXPECT().BackupCustomDocument(gomock.Any(), &params).Return(want, nil)

	r := newTestRouter(c)
	replier, replies := newRecordingReplier()
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), entity.MethodBackupCustomDocument, params)
	assert.NoError(t, r.HandleReq(context.Background(), replier, req))
	r.inflight.Wait()

	got := <-replies
	assert.NoError(t, got.err)
	assert.Equal(t, want, got.result)
}
