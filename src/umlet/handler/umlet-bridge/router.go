package umletbridge

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/controller/commands"
	controller "github.com/umlet/umlet-bridge/src/umlet/controller/umlet-bridge"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// Commands that wait on the host or a webview before they can answer.
// Their webview messages are not ordered against commands handled on the read loop.
var _roundTripCommands = map[string]bool{
	commands.CommandExportPng:        true,
	commands.CommandCreateNewDiagram: true,
	commands.CommandSave:             true,
	commands.CommandSaveAs:           true,
}

type jsonRPCRouter struct {
	umletbridge controller.Controller
	uuid        uuid.UUID
	logger      *zap.SugaredLogger
	stats       tally.Scope
	inflight    *sync.WaitGroup
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = mapper.SessionUUIDToContext(ctx, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case protocol.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case protocol.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	case entity.MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Workspace methods
	case protocol.MethodWorkspaceExecuteCommand:
		return r.ExecuteCommand(ctx, reply, req)

	// Custom editor methods
	case entity.MethodResolveCustomEditor:
		return r.ResolveCustomEditor(ctx, reply, req)

	case entity.MethodDidChangeViewState:
		return r.DidChangeViewState(ctx, reply, req)

	case entity.MethodDidDisposeWebview:
		return r.DidDisposeWebview(ctx, reply, req)

	case entity.MethodWebviewMessage:
		return r.WebviewMessage(ctx, reply, req)

	// Custom document methods
	case entity.MethodSaveCustomDocument:
		return r.SaveCustomDocument(ctx, reply, req)

	case entity.MethodSaveCustomDocumentAs:
		return r.SaveCustomDocumentAs(ctx, reply, req)

	case entity.MethodRevertCustomDocument:
		return r.RevertCustomDocument(ctx, reply, req)

	case entity.MethodBackupCustomDocument:
		return r.BackupCustomDocument(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// replyAsync answers from a new goroutine. Requests are read and handled on a single loop per
// connection, and that loop must keep running to deliver the responses call is waiting on.
func (r *jsonRPCRouter) replyAsync(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, call func(ctx context.Context) (interface{}, error)) error {
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()

		result, err := call(ctx)
		if err != nil {
			r.logger.Warnw("request failed", zap.String("method", req.Method()), zap.Error(err))
		}
		if replyErr := reply(ctx, result, err); replyErr != nil {
			r.logger.Errorw("replying to host", zap.String("method", req.Method()), zap.Error(replyErr))
		}
	}()
	return nil
}

// logNotificationErr keeps errors visible for notifications, which have no reply to carry them.
func (r *jsonRPCRouter) logNotificationErr(req jsonrpc2.Request, err error) {
	if err == nil {
		return
	}
	if _, isCall := req.(*jsonrpc2.Call); !isCall {
		r.logger.Warnw("notification failed", zap.String("method", req.Method()), zap.Error(err))
	}
}

// paramsError reports missing identifiers with the JSON-RPC invalid params code.
func paramsError(err error) error {
	if umleterrors.IsBadRequest(err) {
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	}
	return err
}
