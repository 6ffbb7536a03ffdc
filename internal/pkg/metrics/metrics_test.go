//go:build unit

package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staybook/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, reg *metrics.Registry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRegistryExposesObservations(t *testing.T) {
	reg := metrics.NewRegistry()

	reg.ObserveHTTP("/api/v1/guests/bookings", http.MethodPost, 201, 12*time.Millisecond)
	reg.ObserveCache("rating_summary", "hit")
	reg.ObserveEvent("booking.created", nil)
	reg.ObserveEvent("booking.created", errors.New("broker down"))
	reg.ObserveBookingConflict("check")
	reg.ObserveRetry("postgres")

	out := scrape(t, reg)
	assert.Contains(t, out, `staybook_http_requests_total{method="POST",route="/api/v1/guests/bookings",status="201"} 1`)
	assert.Contains(t, out, `staybook_cache_events_total{cache="rating_summary",event="hit"} 1`)
	assert.Contains(t, out, `staybook_events_published_total{result="error",type="booking.created"} 1`)
	assert.Contains(t, out, `staybook_events_published_total{result="ok",type="booking.created"} 1`)
	assert.Contains(t, out, `staybook_booking_conflicts_total{stage="check"} 1`)
	assert.Contains(t, out, `staybook_transaction_retries_total{store="postgres"} 1`)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := metrics.NewRegistry()
	b := metrics.NewRegistry()
	a.ObserveRetry("mongo")

	assert.NotContains(t, scrape(t, b), `staybook_transaction_retries_total{store="mongo"}`)
}
