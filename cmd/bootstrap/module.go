package bootstrap

import (
	"homeclean-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.RepositoryModule,
	components.SessionModule,
	components.ExternalModule,
	components.RealtimeModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.MaintenanceModule,
)
