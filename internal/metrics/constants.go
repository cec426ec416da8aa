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

// Simulation metric names
const (
	MetricNameTicksProcessed = "habitat_ticks_total"
	MetricNameTickDuration   = "habitat_tick_duration_seconds"
	MetricNameHamstersAlive  = "habitat_hamsters_alive"
	MetricNameSavesTotal     = "habitat_saves_total"
	MetricNameSaveFailures   = "habitat_save_failures_total"
	MetricNameHamstersBorn   = "hamsters_born_total"
	MetricNameHamsterDeaths  = "hamster_deaths_total"
	MetricNameAchievements   = "achievements_unlocked_total"
	MetricNameUpgrades       = "meta_upgrades_purchased_total"
	MetricNameRandomEvents   = "habitat_random_events_total"
	MetricNamePoopsCleaned   = "habitat_poops_cleaned_total"
	MetricNameItemsPurchased = "shop_items_purchased_total"
	MetricNameCoinsSpent     = "shop_coins_spent_total"
	MetricNameGamesOver      = "habitat_games_over_total"
	MetricNameSeedsEarned    = "meta_seeds_earned_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Simulation metric help text
const (
	HelpTextTicksProcessed = "Total number of simulation frames processed"
	HelpTextTickDuration   = "Time spent processing a single frame in seconds"
	HelpTextHamstersAlive  = "Current number of living hamsters"
	HelpTextSavesTotal     = "Total number of profile saves"
	HelpTextSaveFailures   = "Total number of failed profile saves"
	HelpTextHamstersBorn   = "Total number of hamsters added to the habitat"
	HelpTextHamsterDeaths  = "Total number of hamster deaths"
	HelpTextAchievements   = "Total number of achievements unlocked"
	HelpTextUpgrades       = "Total number of meta upgrades purchased"
	HelpTextRandomEvents   = "Total number of random habitat events"
	HelpTextPoopsCleaned   = "Total number of droppings cleaned"
	HelpTextItemsPurchased = "Total number of shop purchases"
	HelpTextCoinsSpent     = "Total coins spent in the shop"
	HelpTextGamesOver      = "Total number of finished runs"
	HelpTextSeedsEarned    = "Total seeds granted at the end of runs"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelItem        = "item"
	LabelKind        = "kind"
	LabelOrigin      = "origin"
	LabelCause       = "cause"
	LabelAchievement = "achievement"
	LabelTrack       = "track"
	LabelEvent       = "event"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers 10µs up to a full 33ms frame budget
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .033}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)

// UnknownRoute labels requests that matched no route
const UnknownRoute = "unmatched"
