//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staybook/internal/domain/listing"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("kaboom") })
	r.GET("/silent", func(c *gin.Context) { _ = c.Error(errors.New("lost connection")) })
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusNotFound}
		resp.Error.Message = "listing not found"
		_ = c.Error(&gin.Error{Err: listing.ErrListingNotFound, Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/aborted", func(c *gin.Context) { httperr.Abort(c, listing.ErrListingNotFound) })
	return r
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Message
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	tests := []struct {
		path       string
		wantStatus int
		wantMsg    string
	}{
		{path: "/panic", wantStatus: http.StatusInternalServerError, wantMsg: httperr.MsgInternal},
		{path: "/silent", wantStatus: http.StatusInternalServerError, wantMsg: httperr.MsgInternal},
		{path: "/public", wantStatus: http.StatusNotFound, wantMsg: "listing not found"},
		{path: "/aborted", wantStatus: http.StatusNotFound, wantMsg: listing.ErrListingNotFound.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(cfg config.CORSConfig) *gin.Engine {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	origin := func(r *gin.Engine, o string) http.Header {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", o)
		r.ServeHTTP(w, req)
		return w.Header()
	}

	t.Run("listed origin with credentials", func(t *testing.T) {
		r := build(config.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET"},
			AllowCredentials: true,
		})

		h := origin(r, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", h.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
		exposed := strings.ToLower(h.Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, "location")
		assert.Contains(t, exposed, "x-request-id")
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		r := build(config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET"},
			AllowCredentials: true,
		})

		h := origin(r, "http://anywhere.example")
		assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
		assert.Empty(t, h.Get("Access-Control-Allow-Credentials"))
	})
}
