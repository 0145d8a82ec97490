package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venue-desk/internal/handler/httperr"
	"venue-desk/internal/usecase/shared"
)

const confirmHeader = "X-Confirm"

// confirmation reads the operator's answer from ?confirm= or X-Confirm.
// Anything but an explicit true declines.
func confirmation(c *gin.Context) shared.ConfirmFunc {
	raw := c.Query("confirm")
	if raw == "" {
		raw = c.GetHeader(confirmHeader)
	}
	ok, err := strconv.ParseBool(raw)
	return shared.Confirmed(err == nil && ok)
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithBindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithBindError(c, err)
		return false
	}
	return true
}

func respond[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, body)
}
