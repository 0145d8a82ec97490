package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/pkg/config"
	"venue-desk/internal/pkg/metrics"
)

// unmatchedRoute keeps 404 scans from creating one series per probed path.
const unmatchedRoute = "unmatched"

func Prometheus(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method
		m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// MetricsBasicAuth guards /metrics when both credentials are configured and
// passes through otherwise.
func MetricsBasicAuth(cfg config.MetricsConfig) gin.HandlerFunc {
	if cfg.User == "" || cfg.Password == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.User)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1
		if !ok || !userOK || !passOK {
			c.Header("WWW-Authenticate", `Basic realm="metrics"`)
			resp := httperr.Response{Status: http.StatusUnauthorized}
			resp.Error.Message = "Unauthorized"
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
			return
		}
		c.Next()
	}
}
