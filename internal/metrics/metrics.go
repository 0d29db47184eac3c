package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TradesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesTotal,
			Help: HelpTextTradesTotal,
		},
		[]string{LabelKind, LabelResult},
	)

	TradeAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradeAmountTotal,
			Help: HelpTextTradeAmountTotal,
		},
		[]string{LabelKind},
	)

	TradeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameTradeDuration,
			Help:    HelpTextTradeDuration,
			Buckets: TradeLatencyBuckets,
		},
		[]string{LabelKind},
	)
)

// RecordTrade records the outcome and latency of one trade call.
func RecordTrade(kind string, err error, started time.Time) {
	result := TradeResultSuccess
	if err != nil {
		result = TradeResultFailure
	}
	TradesTotal.WithLabelValues(kind, result).Inc()
	TradeDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}
