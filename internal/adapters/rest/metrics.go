package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP collectors, labelled by route pattern so that ids
// in paths do not blow up cardinality.
type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "six_cities_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "six_cities_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	for _, c := range []prometheus.Collector{requestCounter, requestLatency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &Metrics{
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}, nil
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestCounter.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
