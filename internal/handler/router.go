package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-desk/internal/handler/api"
	"venue-desk/internal/handler/middleware"
	"venue-desk/internal/pkg/config"
	"venue-desk/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler for the router.
type Handlers struct {
	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Event        *api.EventHandler
	Assignment   *api.AssignmentHandler
	Club         *api.ClubHandler
	Catalog      *api.CatalogHandler
	Export       *api.ExportHandler
}

// Observability is what the router needs to expose Prometheus metrics.
type Observability struct {
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, obs Observability) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger, obs)
	if cfg.Metrics.Enabled {
		engine.GET("/metrics", middleware.MetricsBasicAuth(cfg.Metrics),
			gin.WrapH(promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{})))
	}
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, obs Observability) {
	// request ids first so a recovered panic is still logged with one
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery(logger))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Prometheus(obs.Metrics))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		})

		secured := apiGroup.Group("")
		secured.Use(authMiddleware.RequireAuth())

		addRoutes(secured.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "/places", Handler: h.Availability.Places},
			{Method: http.MethodGet, Path: "/places/:id/areas", Handler: h.Availability.Areas},
		})

		addRoutes(secured.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
		})

		addRoutes(secured.Group("/events"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Event.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Event.List},
			{Method: http.MethodPost, Path: "/delete", Handler: h.Event.DeleteMany},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Event.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Event.Update},
		})

		addRoutes(secured.Group("/assignments"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Assignment.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Assignment.List},
			{Method: http.MethodGet, Path: "/desktop", Handler: h.Assignment.Desktop},
			{Method: http.MethodPost, Path: "/complete", Handler: h.Assignment.Complete},
			{Method: http.MethodPost, Path: "/delete", Handler: h.Assignment.DeleteMany},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Assignment.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Assignment.Update},
		})

		addRoutes(secured.Group("/clubs"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Club.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Club.List},
			{Method: http.MethodGet, Path: "/schedule", Handler: h.Club.Weekly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Club.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Club.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Club.Delete},
		})

		addRoutes(secured.Group("/catalogs/:kind"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.List},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.Add},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.Rename},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.Remove},
		})

		addRoutes(secured.Group("/places/:place_id/areas"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.List},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.Add},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.Rename},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.Remove},
		})

		addRoutes(secured.Group("/exports"), []route{
			{Method: http.MethodGet, Path: "/events.csv", Handler: h.Export.Events},
			{Method: http.MethodGet, Path: "/assignments.csv", Handler: h.Export.Assignments},
			{Method: http.MethodGet, Path: "/desktop.csv", Handler: h.Export.Desktop},
			{Method: http.MethodGet, Path: "/reservations.csv", Handler: h.Export.Reservations},
			{Method: http.MethodGet, Path: "/clubs.csv", Handler: h.Export.Clubs},
			{Method: http.MethodGet, Path: "/schedule.csv", Handler: h.Export.WeeklySchedule},
			{Method: http.MethodGet, Path: "/reservations.ics", Handler: h.Export.ReservationsCalendar},
			{Method: http.MethodGet, Path: "/schedule.ics", Handler: h.Export.WeeklyCalendar},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
