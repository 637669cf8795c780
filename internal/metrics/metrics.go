package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSucceeded = "succeeded"
	OutcomeDeclined  = "declined"
	OutcomeError     = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	basketModificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basket_modifications_total",
			Help: "Basket mutations by action.",
		},
		[]string{"action"},
	)
	paymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Charge attempts by outcome.",
		},
		[]string{"outcome"},
	)
	refundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refunds_total",
			Help: "Refund attempts by outcome.",
		},
		[]string{"outcome"},
	)
	sweptBasketItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swept_basket_items_total",
			Help: "Basket items deleted by the stale basket sweep.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordBasketModification(action string) {
	basketModificationsTotal.WithLabelValues(action).Inc()
}

func RecordPayment(outcome string) {
	paymentsTotal.WithLabelValues(outcome).Inc()
}

func RecordRefund(outcome string) {
	refundsTotal.WithLabelValues(outcome).Inc()
}

func RecordSwept(items int64) {
	sweptBasketItemsTotal.Add(float64(items))
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware must wrap the ServeMux directly: the mux records the matched
// pattern on the request it receives, which is used as the path label.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {
			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}

			httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, path).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			httpRequestsInFlight.Dec()
		}()

		next.ServeHTTP(rw, r)
	})
}

// Handler serves the Prometheus /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
