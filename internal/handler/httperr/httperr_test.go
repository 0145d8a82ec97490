//go:build unit

package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/shared"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not confirmed", shared.ErrNotConfirmed, http.StatusPreconditionRequired},
		{"wrapped busy", fmt.Errorf("create: %w", reservation.ErrPlaceBusy), http.StatusConflict},
		{"marked reference", errs.Mark(errors.New("fk"), commands.ErrReferenceNotFound), http.StatusUnprocessableEntity},
		{"transition", assignment.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"bad credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized},
		{"repo not found", infra.WrapRepoErr("gone", nil, infra.KindNotFound), http.StatusNotFound},
		{"repo duplicate", infra.WrapRepoErr("dup", nil, infra.KindDuplicateKey), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestAbortWithUseCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("known error exposes its reason", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		AbortWithUseCaseError(c, fmt.Errorf("create: %w", reservation.ErrPlaceBusy), "Create reservation failed")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"error":{"message":"Create reservation failed"},"detail":{"reason":%q}}`,
			reservation.ErrPlaceBusy.Error()), rec.Body.String())
		assert.Len(t, c.Errors, 1)
	})

	t.Run("internal error is masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		AbortWithUseCaseError(c, errors.New("pq: connection refused"), "Create reservation failed")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())
	})
}
