//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"venue-desk/internal/handler/api"
	reqdto "venue-desk/internal/handler/dto/request"
	resdto "venue-desk/internal/handler/dto/response"
	"venue-desk/internal/usecase/commands"
	"venue-desk/tests/common/httptest"
	"venue-desk/tests/common/testutil"
	commandsmock "venue-desk/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Login: "operator", Password: "s3cret"}
	expiresAt := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	s.Run("success: returns the bearer token", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), commands.LoginRequest{Login: "operator", Password: "s3cret"}).
			Return(&commands.LoginResult{Login: "operator", AccessToken: "signed-token", ExpiresAt: expiresAt}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("operator", body.Login)
		s.Equal("signed-token", body.AccessToken)
		s.True(expiresAt.Equal(body.ExpiresAt))
	})

	invalid := []testCaseAuth{
		{name: "missing field: login", mutate: testutil.Field("login", nil), expectCode: http.StatusBadRequest, expectInBody: "Validation failed"},
		{name: "missing field: password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest, expectInBody: "Validation failed"},
		{name: "wrong type: login", mutate: testutil.Field("login", 42), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
	}
	s.Run("error: 400 Bad Request", func() {
		for _, tc := range invalid {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid login or password")
	})

	s.Run("error: 500 hides the cause", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("signing key unavailable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "signing key")
	})
}
