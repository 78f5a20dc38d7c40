package umletbridge

import (
	"context"

	"go.lsp.dev/protocol"
)

// ExecuteCommand runs one of the advertised commands, or an intercepted host save command.
func (c *controller) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	return c.commands.Execute(ctx, params)
}
