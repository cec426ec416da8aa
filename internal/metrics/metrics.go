package metrics

import (
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

// Simulation Metrics
var (
	TicksProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicksProcessed,
			Help: HelpTextTicksProcessed,
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	HamstersAlive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHamstersAlive,
			Help: HelpTextHamstersAlive,
		},
	)

	SavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSavesTotal,
			Help: HelpTextSavesTotal,
		},
	)

	SaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveFailures,
			Help: HelpTextSaveFailures,
		},
	)
)

// Business Metrics
var (
	HamstersBorn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHamstersBorn,
			Help: HelpTextHamstersBorn,
		},
		[]string{LabelOrigin},
	)

	HamsterDeaths = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHamsterDeaths,
			Help: HelpTextHamsterDeaths,
		},
		[]string{LabelCause},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievements,
			Help: HelpTextAchievements,
		},
		[]string{LabelAchievement},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgrades,
			Help: HelpTextUpgrades,
		},
		[]string{LabelTrack},
	)

	RandomEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRandomEvents,
			Help: HelpTextRandomEvents,
		},
		[]string{LabelEvent},
	)

	PoopsCleaned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePoopsCleaned,
			Help: HelpTextPoopsCleaned,
		},
	)

	ItemsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPurchased,
			Help: HelpTextItemsPurchased,
		},
		[]string{LabelKind, LabelItem},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	GamesOver = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamesOver,
			Help: HelpTextGamesOver,
		},
	)

	SeedsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeedsEarned,
			Help: HelpTextSeedsEarned,
		},
	)
)
