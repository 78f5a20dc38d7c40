package app

import (
	"context"
	"time"

	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/gateway"
	"github.com/umlet/umlet-bridge/src/umlet/handler"
	"github.com/umlet/umlet-bridge/src/umlet/internal/assetserver"
	"github.com/umlet/umlet-bridge/src/umlet/internal/clock"
	"github.com/umlet/umlet-bridge/src/umlet/internal/core"
	"github.com/umlet/umlet-bridge/src/umlet/internal/filewatcher"
	"github.com/umlet/umlet-bridge/src/umlet/internal/fs"
	"github.com/umlet/umlet-bridge/src/umlet/internal/jsonrpcfx"
	"github.com/umlet/umlet-bridge/src/umlet/internal/serverinfofile"
	workspaceutils "github.com/umlet/umlet-bridge/src/umlet/internal/workspace-utils"
	"go.uber.org/fx"
)

// Module defines the umlet-bridge application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	assetserver.Module,
	filewatcher.Module,
	fs.Module,
	clock.Module,
	serverinfofile.Module,
	workspaceutils.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(newRootScope),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        EnvLocal,
			RuntimeEnvironment: EnvLocal,
		}
	}),
)

func newRootScope(lc fx.Lifecycle) tally.Scope {
	rs, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags: map[string]string{
			"service": "umlet-bridge",
		},
	}, 1*time.Second)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})

	return rs
}
