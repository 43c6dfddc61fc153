package components

import (
	"homeclean-booking/internal/infra/db"
	"homeclean-booking/internal/infra/readstore"
	"homeclean-booking/internal/infra/repository"
	"homeclean-booking/internal/usecase/commands"
	"homeclean-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repository.NewReservationRepository,
		repository.NewIdempotencyRepository,
		repository.NewNotificationRepository,
		fx.Annotate(
			repository.NewReservationGateway,
			fx.As(new(commands.ReservationGateway)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
