package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/config"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewPool,
	),
)

// NewPool connects on start-up so a bad DSN stops the app before it listens.
func NewPool(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			closePool()
			logger.Info("database pool closed")
			return nil
		},
	})

	return pool, nil
}
