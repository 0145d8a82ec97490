package components

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"venue-desk/internal/handler"
	"venue-desk/internal/handler/api"
	"venue-desk/internal/handler/middleware"
	"venue-desk/internal/pkg/metrics"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewEventHandler,
		api.NewAssignmentHandler,
		api.NewClubHandler,
		api.NewCatalogHandler,
		api.NewExportHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
		newObservability,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Event        *api.EventHandler
	Assignment   *api.AssignmentHandler
	Club         *api.ClubHandler
	Catalog      *api.CatalogHandler
	Export       *api.ExportHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Availability: p.Availability,
		Reservation:  p.Reservation,
		Event:        p.Event,
		Assignment:   p.Assignment,
		Club:         p.Club,
		Catalog:      p.Catalog,
		Export:       p.Export,
	}
}

func newObservability(m *metrics.Metrics, reg *prometheus.Registry) handler.Observability {
	return handler.Observability{Metrics: m, Registry: reg}
}
