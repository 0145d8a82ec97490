package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"venue-desk/internal/handler/middleware"
	"venue-desk/internal/pkg/config"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewSlogLogger(cfg.Log)
}
