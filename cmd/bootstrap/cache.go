package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"venue-desk/internal/infra/cache"
	"venue-desk/internal/pkg/config"
	"venue-desk/internal/pkg/metrics"
	"venue-desk/internal/usecase/shared"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to a no-op cache when REDIS_ADDR is empty
// or Redis is unreachable at startup.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) shared.AvailabilityCache {
	if cfg.Redis.Addr == "" {
		logger.Info("availability cache disabled")
		return cache.NoopAvailabilityCache{}
	}

	client := cache.NewClient(cfg.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx, client); err != nil {
		logger.Warn("redis unavailable, availability cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return cache.NoopAvailabilityCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("availability cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	return cache.NewInstrumented(cache.NewRedisAvailabilityCache(client, cfg.Redis.TTL), m)
}
