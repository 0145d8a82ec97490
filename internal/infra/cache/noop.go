package cache

import (
	"context"

	"venue-desk/internal/usecase/shared"
)

// NoopAvailabilityCache is used when no Redis address is configured.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, string, any) (shared.CacheGeneration, bool, error) {
	return shared.NoCacheGeneration, false, nil
}

func (NoopAvailabilityCache) Set(context.Context, shared.CacheGeneration, string, any) error {
	return nil
}

func (NoopAvailabilityCache) Invalidate(context.Context) error { return nil }
