package umletbridge

import (
	"context"

	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) ExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteCommandParams(req)
	if err != nil {
		return reply(ctx, nil, paramsError(err))
	}

	if _roundTripCommands[params.Command] {
		return r.replyAsync(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
			return r.umletbridge.ExecuteCommand(ctx, params)
		})
	}

	// Commands forwarded to a webview stay on the read loop to keep their send order.
	result, err := r.umletbridge.ExecuteCommand(ctx, params)
	return reply(ctx, result, err)
}
