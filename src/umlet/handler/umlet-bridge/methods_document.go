package umletbridge

import (
	"context"

	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"go.lsp.dev/jsonrpc2"
)

// SaveCustomDocument asks the webview for its content and writes it, answering once the file is written.
func (r *jsonRPCRouter) SaveCustomDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCustomDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, paramsError(err))
	}

	return r.replyAsync(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return nil, r.umletbridge.SaveCustomDocument(ctx, params)
	})
}

func (r *jsonRPCRouter) SaveCustomDocumentAs(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSaveCustomDocumentAsParams(req)
	if err != nil {
		return reply(ctx, nil, paramsError(err))
	}

	return r.replyAsync(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return nil, r.umletbridge.SaveCustomDocumentAs(ctx, params)
	})
}

func (r *jsonRPCRouter) RevertCustomDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCustomDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, paramsError(err))
	}

	err = r.umletbridge.RevertCustomDocument(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) BackupCustomDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToBackupCustomDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, paramsError(err))
	}

	return r.replyAsync(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return r.umletbridge.BackupCustomDocument(ctx, params)
	})
}
