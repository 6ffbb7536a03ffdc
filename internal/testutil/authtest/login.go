//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"staybook/internal/handler/dto/request"
	"staybook/internal/pkg/cookie"
	"staybook/internal/testutil/httptest"

	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// LoginUser logs in through the API and returns the access token cookie value.
func LoginUser(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, h, http.MethodPost, "/api/v1/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "access token cookie not set")
	require.NotEmpty(t, c.Value)
	return c.Value
}

// RegisterAndLogin creates an account through the API and logs it in.
func RegisterAndLogin(t *testing.T, h http.Handler, email, role string) string {
	t.Helper()

	w := httptest.PerformRequest(t, h, http.MethodPost, "/api/v1/auth/register",
		request.RegisterRequest{Email: email, Password: DefaultPassword, Role: role}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return LoginUser(t, h, email, DefaultPassword)
}
