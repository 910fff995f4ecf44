package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "circulation_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "circulation_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})

	borrowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "circulation_borrows_total",
		Help: "Borrow attempts by outcome",
	}, []string{"outcome"})

	returnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "circulation_returns_total",
		Help: "Return attempts by outcome",
	}, []string{"outcome"})
)

// Metrics records request counts and latencies per route template. The gin
// FullPath keeps the cardinality bounded; unmatched routes collapse to one
// label.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := c.Request.Method

		httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// CountBorrow and CountReturn are called by the circulation handlers so the
// operational outcome (lent, queued, rejected) is visible without log mining.

func CountBorrow(outcome string) {
	borrowsTotal.WithLabelValues(outcome).Inc()
}

func CountReturn(outcome string) {
	returnsTotal.WithLabelValues(outcome).Inc()
}
