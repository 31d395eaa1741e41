package metrics

import "github.com/prometheus/client_golang/prometheus"

// PricingCollector publishes pricing quote statistics to Prometheus.
type PricingCollector struct {
	quotes     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	multiplier prometheus.Histogram
	confidence prometheus.Histogram
}

// NewPricingCollector builds the collectors and registers them with reg.
func NewPricingCollector(reg prometheus.Registerer) *PricingCollector {
	c := &PricingCollector{
		quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_quotes_total",
				Help: "Count of computed price recommendations by strategy and customer segment.",
			},
			[]string{"strategy", "segment"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_rejections_total",
				Help: "Count of pricing requests rejected before scoring, by error code.",
			},
			[]string{"code"},
		),
		multiplier: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pricing_final_multiplier",
			Help:    "Final clamped price multiplier applied to the base price.",
			Buckets: []float64{0.7, 0.8, 0.9, 1.0, 1.1, 1.2, 1.4, 1.6, 1.8, 2.0},
		}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pricing_confidence_score",
			Help:    "Confidence score attached to price recommendations.",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
	}
	reg.MustRegister(c.quotes, c.rejections, c.multiplier, c.confidence)
	return c
}

// ObserveQuote records a successful recommendation.
func (c *PricingCollector) ObserveQuote(strategy, segment string, multiplier, confidence float64) {
	c.quotes.WithLabelValues(strategy, segment).Inc()
	c.multiplier.Observe(multiplier)
	c.confidence.Observe(confidence)
}

// ObserveRejection records a request that failed validation.
func (c *PricingCollector) ObserveRejection(code string) {
	c.rejections.WithLabelValues(code).Inc()
}
