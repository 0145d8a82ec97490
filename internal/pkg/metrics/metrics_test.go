//go:build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/events", "200").Inc()
	m.AvailabilityCacheLookups.WithLabelValues("hit").Add(2)
	m.AvailabilityCacheFlushes.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/events", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AvailabilityCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityCacheFlushes))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "venue_desk_http_requests_total")
	assert.Contains(t, names, "venue_desk_availability_cache_invalidations_total")
}

func TestNewWithRegistry_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWithRegistry(reg)
	assert.Panics(t, func() { NewWithRegistry(reg) })
}
