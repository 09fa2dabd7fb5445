package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	ItemsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsBuilt,
			Help:      HelpTextItemsBuilt,
		},
		[]string{LabelMode},
	)

	BuildErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameBuildErrors,
			Help:      HelpTextBuildErrors,
		},
		[]string{LabelMode},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogReloads,
			Help:      HelpTextCatalogReloads,
		},
		[]string{LabelResult},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogItems,
			Help:      HelpTextCatalogItems,
		},
	)
)

// RegisterPlayerCache exposes the size of a player cache as a gauge.
// Calling it twice panics with a duplicate registration.
func RegisterPlayerCache(size func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNamePlayerCacheSize,
			Help:      HelpTextPlayerCacheSize,
		},
		func() float64 { return float64(size()) },
	)
}
