package middleware

import (
	"log/slog"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"venue-desk/internal/pkg/config"
)

// NewCORSMiddleware treats a "*" origin as allow-all. Credentials are
// dropped in that case; browsers reject the combination anyway.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if !slices.Contains(corsCfg.ExposeHeaders, RequestIDHeader) {
		corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), RequestIDHeader)
	}
	logger.Info("cors configured", "allow_all", corsCfg.AllowAllOrigins, "origins", corsCfg.AllowOrigins)
	return cors.New(corsCfg)
}
