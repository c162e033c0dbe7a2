package components

import (
	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"
	"citas-unidades/internal/pkg/clock"
	"citas-unidades/internal/pkg/config"
	"citas-unidades/internal/usecase"
	"citas-unidades/internal/usecase/commands"
	"citas-unidades/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.AdminConfig { return cfg.Admin },
	NewSlotCatalog,
	NewTransitionPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewStatusUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewSlotCatalog(cfg config.Config) slot.Catalog {
	return slot.DefaultCatalog(cfg.Booking.SlotCapacity)
}

func NewTransitionPolicy(cfg config.Config) (booking.Policy, error) {
	return booking.ParsePolicy(cfg.Booking.Transitions)
}
