package components

import (
	"homeclean-booking/internal/handler"
	"homeclean-booking/internal/handler/api"
	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		func(cfg config.Config) config.CORSConfig { return cfg.CORS },
		api.NewNotificationHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	wizard *api.WizardHandler,
	catalog *api.CatalogHandler,
	reservation *api.ReservationHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Wizard:       wizard,
		Catalog:      catalog,
		Reservation:  reservation,
		Notification: notification,
	}
}
