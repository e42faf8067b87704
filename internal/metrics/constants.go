package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Gacha metric names
const (
	MetricNameRollsTotal        = "gacha_rolls_total"
	MetricNamePityTriggersTotal = "gacha_pity_triggers_total"
	MetricNameEventDrawsTotal   = "gacha_event_draws_total"
	MetricNameSimulationsTotal  = "gacha_simulations_total"
	MetricNameActiveSessions    = "gacha_active_sessions"
)

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextRollsTotal           = "Rolls by awarded rarity and the stage that produced them"
	HelpTextPityTriggersTotal    = "Hard pity guarantees fired, by tier"
	HelpTextEventDrawsTotal      = "Event pool draws by rarity"
	HelpTextSimulationsTotal     = "Monte Carlo simulations run"
	HelpTextActiveSessions       = "Player sessions currently cached"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelRarity = "rarity"
	LabelSource = "source"
)

// HTTPLatencyBuckets in seconds
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// unmatchedRoute labels requests that hit no route.
const unmatchedRoute = "unmatched"
