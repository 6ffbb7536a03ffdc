//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staybook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type httpRecorder struct {
	routes   []string
	statuses []int
}

func (r *httpRecorder) ObserveHTTP(route, _ string, status int, _ time.Duration) {
	r.routes = append(r.routes, route)
	r.statuses = append(r.statuses, status)
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &httpRecorder{}
	r := gin.New()
	r.Use(middleware.Metrics(rec))
	r.GET("/listings/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/listings/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, []string{"/listings/:id", "unmatched"}, rec.routes)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, rec.statuses)
}
