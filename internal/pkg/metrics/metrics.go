package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "staybook"

// Registry holds the service collectors. Each instance owns its own prometheus
// registry so tests and the fx graph never share global state.
type Registry struct {
	reg *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	cacheEvents   *prometheus.CounterVec
	events        *prometheus.CounterVec
	bookingDenied *prometheus.CounterVec
	txRetries     *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
			[]string{"cache", "event"}, // event: hit|miss|set|del|error
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "events_published_total", Help: "Domain events handed to the broker."},
			[]string{"type", "result"},
		),
		bookingDenied: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "booking_conflicts_total", Help: "Booking requests rejected because of an overlapping stay."},
			[]string{"stage"}, // stage: check|constraint
		),
		txRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "transaction_retries_total", Help: "Unit of work retries after a transient failure."},
			[]string{"store"},
		),
	}
	r.reg.MustRegister(
		r.httpRequests, r.httpLatency, r.cacheEvents, r.events, r.bookingDenied, r.txRetries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Registry) ObserveHTTP(route, method string, status int, dur time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (r *Registry) ObserveCache(cache, event string) {
	r.cacheEvents.WithLabelValues(cache, event).Inc()
}

func (r *Registry) ObserveEvent(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.events.WithLabelValues(eventType, result).Inc()
}

func (r *Registry) ObserveBookingConflict(stage string) {
	r.bookingDenied.WithLabelValues(stage).Inc()
}

func (r *Registry) ObserveRetry(store string) {
	r.txRetries.WithLabelValues(store).Inc()
}
