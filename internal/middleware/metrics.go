package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_request_count",
			Help: "Application Request Count",
		},
		[]string{"method", "endpoint", "http_status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_request_latency_seconds",
			Help: "Application Request Latency",
		},
		[]string{"method", "endpoint"},
	)
)

// MetricsConfig configures the metrics middleware
type MetricsConfig struct {
	// Skip function
	Skip func(*fiber.Ctx) bool
	// PathNormalizer maps a request path to the endpoint label. The default
	// is the raw path, which creates one series per distinct ID in
	// parameterized routes; substitute the route template here to bound the
	// label cardinality.
	PathNormalizer func(string) string
}

// DefaultMetricsConfig returns default metrics config
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Skip:           nil,
		PathNormalizer: RawPathNormalizer,
	}
}

// RawPathNormalizer labels series with the request path unchanged
func RawPathNormalizer(path string) string {
	return path
}

// MetricsMiddleware records a count and latency observation for every
// request, including /health and /metrics themselves
type MetricsMiddleware struct {
	config MetricsConfig
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(config MetricsConfig) *MetricsMiddleware {
	return &MetricsMiddleware{
		config: config,
	}
}

// Handler returns the metrics handler
func (m *MetricsMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.config.Skip != nil && m.config.Skip(c) {
			return c.Next()
		}

		start := time.Now()
		method := c.Method()
		endpoint := m.config.PathNormalizer(c.Path())

		err := c.Next()

		requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
		requestCount.WithLabelValues(method, endpoint, strconv.Itoa(c.Response().StatusCode())).Inc()

		return err
	}
}
