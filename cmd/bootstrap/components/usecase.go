package components

import (
	"qrlink/internal/pkg/clock"
	"qrlink/internal/usecase/commands"
	"qrlink/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewQRCodeCommands,
		commands.NewScanCommands,
		queries.NewQRCodeQueries,
	),
)
