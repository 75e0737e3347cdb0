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

// Business metric names
const (
	MetricNameBetsPlaced      = "bets_placed_total"
	MetricNameStakeTaken      = "stake_taken_total"
	MetricNameSettlementsRun  = "settlements_run_total"
	MetricNameWinningsPaid    = "winnings_paid_total"
	MetricNameRoundsRolled    = "rounds_rolled_over_total"
	MetricNameStaleResults    = "stale_results_observed"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextBetsPlaced     = "Total number of bets placed, by bet type"
	HelpTextStakeTaken     = "Total stake amount taken in rupees"
	HelpTextSettlementsRun = "Total number of rounds settled, by game type"
	HelpTextWinningsPaid   = "Total winnings credited in rupees"
	HelpTextRoundsRolled   = "Total number of rounds rolled over to the next day"
	HelpTextStaleResults   = "Games currently past result time with no declared result"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
)

// HTTPLatencyBuckets covers the expected latency range of the API.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
