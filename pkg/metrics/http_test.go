package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTPCollectorSeriesPerRouteAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewHTTPCollector(reg)

	c.ObserveRequest("POST", "/api/v1/pricing/recommendations", 200, 3*time.Millisecond)
	c.ObserveRequest("POST", "/api/v1/pricing/recommendations", 200, 5*time.Millisecond)
	c.ObserveRequest("POST", "/api/v1/pricing/recommendations", 400, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "pricing_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
