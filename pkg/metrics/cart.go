package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart engine activity.
type CartMetrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	persistDuration *prometheus.HistogramVec
	cartTotal       prometheus.Histogram
}

// NewCartMetrics registers the cart metrics on the provided registerer. A nil
// registerer yields a recorder that drops every observation.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart commands applied successfully.",
	}, []string{"command"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_persistence_failures_total",
		Help: "Cart snapshot reads or writes that failed.",
	}, []string{"operation"})
	persistDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_persistence_duration_seconds",
		Help:    "Duration of cart snapshot reads and writes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	cartTotal := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cart_total_amount",
		Help:    "Cart grand total after each mutation.",
		Buckets: []float64{0, 1000, 5000, 10000, 25000, 50000, 100000, 250000},
	})
	reg.MustRegister(mutations, persistFailures, persistDuration, cartTotal)
	return &CartMetrics{
		mutations:       mutations,
		persistFailures: persistFailures,
		persistDuration: persistDuration,
		cartTotal:       cartTotal,
	}
}

// IncMutation counts a successfully applied command.
func (c *CartMetrics) IncMutation(command string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(command)).Inc()
}

// IncPersistFailure counts a failed snapshot operation ("load" or "save").
func (c *CartMetrics) IncPersistFailure(operation string) {
	if c == nil || c.persistFailures == nil {
		return
	}
	c.persistFailures.WithLabelValues(normalizeLabel(operation)).Inc()
}

// ObservePersist records how long a snapshot operation took.
func (c *CartMetrics) ObservePersist(operation string, duration time.Duration) {
	if c == nil || c.persistDuration == nil {
		return
	}
	c.persistDuration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// ObserveCartTotal records a cart grand total.
func (c *CartMetrics) ObserveCartTotal(total float64) {
	if c == nil || c.cartTotal == nil {
		return
	}
	c.cartTotal.Observe(total)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
