package app

import (
	"go.uber.org/fx"

	"folio/internal/app/cli"
	"folio/internal/app/generator"
	"folio/internal/app/ui"
	"folio/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	logger.Module,
	generator.Module,
	ui.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
