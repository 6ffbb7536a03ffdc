//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/user"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/cookie"
	"staybook/internal/testutil/authtest"
	"staybook/internal/testutil/httptest"
	"staybook/internal/testutil/mock/usecasemock"
	"staybook/internal/usecase"
	"staybook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	jwt    *authtest.JWTHelper
	userID uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	s.jwt = authtest.NewJWTHelper(cfg.JWT)
	s.userID = uuid.New()

	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt.Service(s.T())))
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	echo := func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID.String(), "role": actor.Role.String()})
	}
	s.router.GET("/me", m.RequireAuth(), echo)
	s.router.GET("/hosts-only", m.RequireAuth(), m.RequireRole(user.RoleHost, user.RoleAdmin), echo)
	s.router.GET("/misconfigured", m.RequireRole(user.RoleHost), echo)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token sets the actor", func() {
		token := s.jwt.GenerateToken(s.T(), s.userID, user.RoleGuest)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body["userId"])
		s.Equal("guest", body["role"])
	})

	s.Run("success: cookie token is accepted", func() {
		token := s.jwt.GenerateToken(s.T(), s.userID, user.RoleHost)
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a malformed token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 with an expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), s.userID, user.RoleGuest)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 with a token signed by another secret", func() {
		other := authtest.NewJWTHelper(config.JWTConfig{Secret: "other-secret", Duration: "1h"})
		token := other.GenerateToken(s.T(), s.userID, user.RoleGuest)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	cases := []struct {
		name string
		role user.Role
		want int
	}{
		{"host allowed", user.RoleHost, http.StatusOK},
		{"admin allowed", user.RoleAdmin, http.StatusOK},
		{"guest forbidden", user.RoleGuest, http.StatusForbidden},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			token := s.jwt.GenerateToken(s.T(), s.userID, tc.role)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts-only", nil, token)
			s.Equal(tc.want, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 500 when used without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func TestRequireAuthPrefersCookieOverBearer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	actor := shared.Actor{UserID: uuid.New(), Role: user.RoleGuest}
	validator.EXPECT().ValidateToken("cookie-token").Return(actor, nil).Times(1)

	m := middleware.NewAuthMiddleware(validator)
	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		got, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": got.UserID.String()})
	})

	cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
	rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil, cookies, "header-token")

	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	require.Equal(t, actor.UserID.String(), body["userId"])
}
