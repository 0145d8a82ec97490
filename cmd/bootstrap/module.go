package bootstrap

import (
	"go.uber.org/fx"

	"venue-desk/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	CacheModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
