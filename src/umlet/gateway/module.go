// Package gateway contains the outbound integrations of the bridge.
package gateway

import (
	ideclient "github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client"
	"go.uber.org/fx"
)

// Module is the Fx module for outbound gateways.
var Module = fx.Options(
	fx.Provide(ideclient.New),
)
