package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPCollector tracks API request latency.
type HTTPCollector struct {
	latency *prometheus.HistogramVec
}

// NewHTTPCollector builds the latency histogram and registers it with reg.
func NewHTTPCollector(reg prometheus.Registerer) *HTTPCollector {
	c := &HTTPCollector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pricing_http_request_duration_seconds",
			Help:    "Latency of pricing API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(c.latency)
	return c
}

// ObserveRequest records one served request.
func (c *HTTPCollector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.latency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
