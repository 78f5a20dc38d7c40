package handler

import (
	controller "github.com/umlet/umlet-bridge/src/umlet/controller"
	umletbridge "github.com/umlet/umlet-bridge/src/umlet/controller/umlet-bridge"
	handler "github.com/umlet/umlet-bridge/src/umlet/handler/umlet-bridge"
	"github.com/umlet/umlet-bridge/src/umlet/repository/document"
	"github.com/umlet/umlet-bridge/src/umlet/repository/session"
	"go.uber.org/fx"
)

// Module provides the umlet-bridge server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(document.New),
	fx.Provide(handler.New),
	fx.Invoke(outputServiceInfo),
	fx.Invoke(func(h handler.Handler) {}),
	fx.Invoke(func(c umletbridge.Controller) {}),
)
