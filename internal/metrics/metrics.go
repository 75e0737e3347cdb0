// Package metrics defines the Prometheus collectors for the service and an
// HTTP middleware that records request-level metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business metrics
var (
	BetsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsPlaced,
			Help: HelpTextBetsPlaced,
		},
		[]string{LabelType},
	)

	StakeTaken = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStakeTaken,
			Help: HelpTextStakeTaken,
		},
	)

	SettlementsRun = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSettlementsRun,
			Help: HelpTextSettlementsRun,
		},
		[]string{LabelType},
	)

	WinningsPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWinningsPaid,
			Help: HelpTextWinningsPaid,
		},
	)

	RoundsRolled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsRolled,
			Help: HelpTextRoundsRolled,
		},
	)

	StaleResults = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStaleResults,
			Help: HelpTextStaleResults,
		},
	)
)
