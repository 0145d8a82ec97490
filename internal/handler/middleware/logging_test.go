//go:build unit

package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"venue-desk/internal/handler/httperr"
)

func newTestEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	engine := gin.New()
	engine.Use(RequestLogger(logger), Recovery(logger), ErrorHandler(logger))
	return engine
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(&buf)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("inbound id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "desk-42")
		rec := httptest.NewRecorder()

		engine.ServeHTTP(rec, req)

		assert.Equal(t, "desk-42", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "desk-42", rec.Body.String())
		assert.Contains(t, buf.String(), "request_id=desk-42")
	})

	t.Run("missing id is generated", func(t *testing.T) {
		rec := httptest.NewRecorder()

		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
		assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())
	})
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(&buf)
	engine.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithUseCaseError(c, errors.New("pool exhausted"), "List failed")
	})
	engine.GET("/panic", func(_ *gin.Context) {
		panic("nil map")
	})

	t.Run("5xx cause is logged but not returned", func(t *testing.T) {
		rec := httptest.NewRecorder()

		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pool exhausted")
		assert.Contains(t, buf.String(), "pool exhausted")
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		rec := httptest.NewRecorder()

		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
		assert.Contains(t, buf.String(), "recovered from panic")
	})
}
