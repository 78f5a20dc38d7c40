package umletbridge

import (
	"context"

	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// ResolveCustomEditor answers with the webview content, then loads the document into the new panel.
func (r *jsonRPCRouter) ResolveCustomEditor(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToResolveCustomEditorParams(req)
	if err != nil {
		return reply(ctx, nil, paramsError(err))
	}

	result, err := r.umletbridge.ResolveCustomEditor(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}
	if err := reply(ctx, result, nil); err != nil {
		return err
	}

	if err := r.umletbridge.LoadDocument(ctx, params); err != nil {
		r.logger.Errorw("loading document", zap.Stringer("webviewId", params.WebviewID), zap.Error(err))
	}
	return nil
}

func (r *jsonRPCRouter) DidChangeViewState(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidChangeViewStateParams(req)
	if err != nil {
		r.logNotificationErr(req, err)
		return reply(ctx, nil, paramsError(err))
	}

	err = r.umletbridge.DidChangeViewState(ctx, params)
	r.logNotificationErr(req, err)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) DidDisposeWebview(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidDisposeWebviewParams(req)
	if err != nil {
		r.logNotificationErr(req, err)
		return reply(ctx, nil, paramsError(err))
	}

	err = r.umletbridge.DidDisposeWebview(ctx, params)
	r.logNotificationErr(req, err)
	return reply(ctx, nil, err)
}

// WebviewMessage relays a message posted by a webview. Serialize responses complete pending round trips.
func (r *jsonRPCRouter) WebviewMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToWebviewMessageParams(req)
	if err != nil {
		r.logNotificationErr(req, err)
		return reply(ctx, nil, paramsError(err))
	}

	err = r.umletbridge.WebviewMessage(ctx, params)
	r.logNotificationErr(req, err)
	return reply(ctx, nil, err)
}
