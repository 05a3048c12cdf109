package components

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/clock"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPriceQuoteQueries,
		queries.NewCapacityQuoteQueries,
		queries.NewRuleSheetQueries,
		queries.NewOverrideQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRuleSheetCommands,
		commands.NewOverrideCommands,
		commands.NewDefaultsCommands,
	),
)
