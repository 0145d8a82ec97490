package cache

import (
	"context"

	"venue-desk/internal/pkg/metrics"
	"venue-desk/internal/usecase/shared"
)

// Instrumented counts lookups and invalidations of the wrapped cache.
type Instrumented struct {
	inner   shared.AvailabilityCache
	metrics *metrics.Metrics
}

func NewInstrumented(inner shared.AvailabilityCache, m *metrics.Metrics) *Instrumented {
	return &Instrumented{inner: inner, metrics: m}
}

func (c *Instrumented) Get(ctx context.Context, key string, dst any) (shared.CacheGeneration, bool, error) {
	gen, hit, err := c.inner.Get(ctx, key, dst)
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	c.metrics.AvailabilityCacheLookups.WithLabelValues(result).Inc()
	return gen, hit, err
}

func (c *Instrumented) Set(ctx context.Context, gen shared.CacheGeneration, key string, value any) error {
	return c.inner.Set(ctx, gen, key, value)
}

func (c *Instrumented) Invalidate(ctx context.Context) error {
	c.metrics.AvailabilityCacheFlushes.Inc()
	return c.inner.Invalidate(ctx)
}
