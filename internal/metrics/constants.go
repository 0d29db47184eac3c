package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameTradesTotal      = "bazaar_trades_total"
	MetricNameTradeAmountTotal = "bazaar_trade_amount_total"
	MetricNameTradeDuration    = "bazaar_trade_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

const (
	HelpTextTradesTotal      = "Total number of trades by kind and result"
	HelpTextTradeAmountTotal = "Total money moved by committed trades"
	HelpTextTradeDuration    = "Trade execution latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelResult = "result"
)

// Trade kind label values
const (
	TradeKindPurchase = "purchase"
	TradeKindSell     = "sell"
)

// Trade result label values
const (
	TradeResultSuccess = "success"
	TradeResultFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TradeLatencyBuckets covers a lock-contended transaction including its
// bounded retries.
var TradeLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode trade event payload"
	LogMsgAmountParseFailed   = "Failed to parse trade amount"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
