package components

import (
	"vehicle-booking/internal/pkg/clock"
	"vehicle-booking/internal/usecase/commands"
	"vehicle-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewBookingQueries,
		commands.NewBookingCommands,
	),
)
