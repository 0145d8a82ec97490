package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/pkg/errs"
)

const stackLinesLogged = 8

// ErrorHandler logs the cause behind every 5xx that a handler reported with
// httperr, and answers for handlers that aborted without writing a body.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		var reported *httperr.Response
		for i := len(c.Errors) - 1; i >= 0; i-- {
			e := c.Errors[i]
			resp, ok := e.Meta.(httperr.Response)
			if !ok || !e.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				logger.ErrorContext(c.Request.Context(), resp.Error.Message,
					"request_id", GetRequestID(c),
					"error", e.Err.Error(),
					"stack", errs.ExtractStackLines(e.Err, stackLinesLogged))
			}
			if reported == nil {
				reported = &resp
			}
		}

		if c.Writer.Written() {
			return
		}
		if reported != nil {
			c.JSON(reported.Status, reported)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// Recovery turns a panic into the standard 500 body.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", r,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
