package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every itemforge metric
const Namespace = "itemforge"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Catalog metric names
const (
	MetricNameItemsBuilt      = "items_built_total"
	MetricNameBuildErrors     = "item_build_errors_total"
	MetricNameCatalogReloads  = "catalog_reloads_total"
	MetricNameCatalogItems    = "catalog_items"
	MetricNamePlayerCacheSize = "player_cache_entries"
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

// Catalog metric help text
const (
	HelpTextItemsBuilt      = "Total number of item stacks built, by builder mode"
	HelpTextBuildErrors     = "Total number of item builds rejected, by builder mode"
	HelpTextCatalogReloads  = "Total number of catalog reloads, by result"
	HelpTextCatalogItems    = "Number of item definitions currently loaded"
	HelpTextPlayerCacheSize = "Number of players held in the player registry"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelMode   = "mode"
	LabelResult = "result"
)

// Builder modes
const (
	ModeCreate = "create"
	ModeCopy   = "copy"
	ModeMutate = "mutate"
)

// Reload results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
