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

// Crafting metric names
const (
	MetricNameCraftAttempts     = "craft_attempts_total"
	MetricNameExtractions       = "extractions_total"
	MetricNameSalvages          = "salvages_total"
	MetricNameRefusals          = "refusals_total"
	MetricNameRecipesRegistered = "recipes_registered"
	MetricNameEditorSessions    = "editor_sessions"
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

// Crafting metric help text
const (
	HelpTextCraftAttempts     = "Total number of permitted craft attempts by outcome"
	HelpTextExtractions       = "Total number of skin/butcher attempts by verb and outcome"
	HelpTextSalvages          = "Total number of salvage operations by outcome"
	HelpTextRefusals          = "Total number of refused commands by refusal kind"
	HelpTextRecipesRegistered = "Number of recipes currently registered"
	HelpTextEditorSessions    = "Number of open recipe editor sessions"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelVerb    = "verb"
	LabelReason  = "reason"
	LabelCommand = "command"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
