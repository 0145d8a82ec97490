//go:build unit

package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue-desk/internal/pkg/metrics"
	"venue-desk/internal/usecase/shared"
	sharedmock "venue-desk/tests/mock/shared"
)

func TestInstrumented(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := sharedmock.NewMockAvailabilityCache(ctrl)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	c := NewInstrumented(inner, m)
	ctx := context.Background()

	inner.EXPECT().Get(ctx, "a", gomock.Any()).Return(shared.CacheGeneration(2), true, nil)
	inner.EXPECT().Get(ctx, "b", gomock.Any()).Return(shared.CacheGeneration(2), false, nil)
	inner.EXPECT().Get(ctx, "c", gomock.Any()).Return(shared.NoCacheGeneration, false, errors.New("redis down"))
	inner.EXPECT().Set(ctx, shared.CacheGeneration(2), "b", gomock.Any()).Return(nil)
	inner.EXPECT().Invalidate(ctx).Return(nil)

	var dst []string
	_, _, _ = c.Get(ctx, "a", &dst)
	gen, _, _ := c.Get(ctx, "b", &dst)
	_, _, err := c.Get(ctx, "c", &dst)
	assert.Error(t, err)
	assert.NoError(t, c.Set(ctx, gen, "b", []string{"x"}))
	assert.NoError(t, c.Invalidate(ctx))

	for result, want := range map[string]float64{"hit": 1, "miss": 1, "error": 1} {
		assert.Equal(t, want, testutil.ToFloat64(m.AvailabilityCacheLookups.WithLabelValues(result)), result)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityCacheFlushes))
}
