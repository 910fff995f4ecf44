package components

import (
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewCirculationCommands,
		commands.NewReservationCommands,
		commands.NewCatalogCommands,
		commands.NewMemberCommands,
		commands.NewAuthCommands,

		queries.NewLoanQueries,
		queries.NewBookQueries,
		queries.NewMemberQueries,
		queries.NewReservationQueries,
		queries.NewAuditQueries,
	),
)
