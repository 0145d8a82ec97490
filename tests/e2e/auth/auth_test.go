//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"venue-desk/internal/handler/dto/request"
	"venue-desk/tests/common/authtest"
	"venue-desk/tests/common/httptest"
	"venue-desk/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	securedURL = "/api/reservations"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name       string
		login      string
		password   string
		expectCode int
	}{
		{name: "success", login: s.Config.Operator.Login, password: authtest.OperatorPassword, expectCode: http.StatusOK},
		{name: "wrong password", login: s.Config.Operator.Login, password: "nope", expectCode: http.StatusUnauthorized},
		{name: "unknown login", login: "intruder", password: authtest.OperatorPassword, expectCode: http.StatusUnauthorized},
		{name: "missing password", login: s.Config.Operator.Login, expectCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Login: tt.login, Password: tt.password}, "")
			s.Equal(tt.expectCode, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestSecuredRoutes() {
	s.Run("token from login opens secured routes", func() {
		token := authtest.LoginOperator(s.T(), s.Router, s.Config.Operator.Login, authtest.OperatorPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, securedURL, nil, token)

		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, securedURL, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), s.Config.Operator.Login)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, securedURL, nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestMetricsEndpoint() {
	s.Run("login attempts show up per route", func() {
		httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Login: "intruder", Password: "nope"}, "")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/metrics", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `venue_desk_http_requests_total{method="POST",route="/api/auth/login",status_code="401"}`)
	})
}
