package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"service-orders/internal/domain"
)

// NewRateLimitExceededTotal returns a counter of requests rejected by the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// StatsSource reports the current registry sizes.
type StatsSource interface {
	Stats() domain.Stats
}

// StoreCollector exposes assignment store sizes as gauges, read on every scrape.
type StoreCollector struct {
	src        StatsSource
	orders     *prometheus.Desc
	partners   *prometheus.Desc
	assigned   *prometheus.Desc
	unassigned *prometheus.Desc
}

// NewStoreCollector creates a collector over src.
func NewStoreCollector(src StatsSource) *StoreCollector {
	return &StoreCollector{
		src:        src,
		orders:     prometheus.NewDesc("orders", "Number of registered orders.", nil, nil),
		partners:   prometheus.NewDesc("partners", "Number of registered delivery partners.", nil, nil),
		assigned:   prometheus.NewDesc("orders_assigned", "Number of orders assigned to a partner.", nil, nil),
		unassigned: prometheus.NewDesc("orders_unassigned", "Number of orders without a partner.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.orders
	ch <- c.partners
	ch <- c.assigned
	ch <- c.unassigned
}

// Collect implements prometheus.Collector. All gauges come from one snapshot.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.orders, prometheus.GaugeValue, float64(s.Orders))
	ch <- prometheus.MustNewConstMetric(c.partners, prometheus.GaugeValue, float64(s.Partners))
	ch <- prometheus.MustNewConstMetric(c.assigned, prometheus.GaugeValue, float64(s.Assigned))
	ch <- prometheus.MustNewConstMetric(c.unassigned, prometheus.GaugeValue, float64(s.Unassigned()))
}

var _ prometheus.Collector = (*StoreCollector)(nil)
