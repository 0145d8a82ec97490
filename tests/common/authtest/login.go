//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"venue-desk/internal/handler/dto/request"
	"venue-desk/internal/handler/dto/response"
	"venue-desk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// OperatorPassword is the plain password the e2e config hashes at startup.
const OperatorPassword = "password123"

func LoginOperator(t *testing.T, router *gin.Engine, login, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Login: login, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.AccessToken, "access token is empty")

	return body.AccessToken
}
