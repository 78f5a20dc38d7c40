package controller

import (
	"github.com/umlet/umlet-bridge/src/umlet/controller/commands"
	doclifecycle "github.com/umlet/umlet-bridge/src/umlet/controller/doc-lifecycle"
	editorprovider "github.com/umlet/umlet-bridge/src/umlet/controller/editor-provider"
	umletbridge "github.com/umlet/umlet-bridge/src/umlet/controller/umlet-bridge"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(umletbridge.New),
	fx.Provide(editorprovider.New),
	fx.Provide(doclifecycle.New),
	fx.Provide(commands.New),
)
