package bootstrap

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"venue-desk/internal/pkg/metrics"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		NewMetrics,
	),
)

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewWithRegistry(reg)
}
