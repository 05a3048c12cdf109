package components

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra/readstore"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra/writerepo"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	readstoreModule,
	writerepoModule,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRuleSheetReadStore,
			fx.As(new(queries.RuleSheetReadStore)),
		),
		fx.Annotate(
			readstore.NewDefaultsReadStore,
			fx.As(new(queries.DefaultsReadStore)),
		),
		fx.Annotate(
			readstore.NewOverrideReadStore,
			fx.As(new(queries.OverrideReadStore)),
		),
		fx.Annotate(
			readstore.NewOperatorReadStore,
			fx.As(new(queries.OperatorReadStore)),
		),
	),
)

var writerepoModule = fx.Module("repository/writerepo",
	fx.Provide(
		fx.Annotate(
			writerepo.NewRuleSheetRepository,
			fx.As(new(commands.RuleSheetRepository)),
		),
		fx.Annotate(
			writerepo.NewOverrideRepository,
			fx.As(new(commands.OverrideRepository)),
		),
		fx.Annotate(
			writerepo.NewDefaultsRepository,
			fx.As(new(commands.DefaultsRepository)),
		),
		fx.Annotate(
			writerepo.NewOperatorRepository,
			fx.As(new(commands.OperatorRepository)),
		),
	),
)
