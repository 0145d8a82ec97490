package bootstrap

import (
	"time"

	"go.uber.org/fx"

	"venue-desk/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewVenueLocation,
	),
)

// NewVenueLocation is the zone used for wall-clock time, recurrence and exports.
func NewVenueLocation(cfg config.Config) *time.Location {
	return cfg.Export.Location()
}
