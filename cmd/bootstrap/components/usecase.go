package components

import (
	"rosterd/internal/pkg/clock"
	"rosterd/internal/usecase/commands"
	"rosterd/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewShiftUseCase,
		commands.NewAssignmentUseCase,
		commands.NewRequestUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewShiftQueries,
		queries.NewRequestQueries,
	),
)
