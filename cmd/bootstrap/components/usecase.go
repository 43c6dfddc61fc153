package components

import (
	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/pkg/config"
	"homeclean-booking/internal/usecase"
	"homeclean-booking/internal/usecase/commands"
	"homeclean-booking/internal/usecase/queries"

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
	fx.Annotate(
		reservation.NewDefaultPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	NewWizardSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWizardCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWizardQueries,
		queries.NewCatalogQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewWizardSettings(cfg config.Config) (commands.WizardSettings, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return commands.WizardSettings{}, err
	}
	return commands.WizardSettings{
		Location:           loc,
		DefaultServiceType: cfg.Booking.DefaultServiceType,
	}, nil
}
