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

// Crafting Metrics
var (
	CraftAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftAttempts,
			Help: HelpTextCraftAttempts,
		},
		[]string{LabelResult},
	)

	Extractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExtractions,
			Help: HelpTextExtractions,
		},
		[]string{LabelVerb, LabelResult},
	)

	Salvages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSalvages,
			Help: HelpTextSalvages,
		},
		[]string{LabelResult},
	)

	Refusals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRefusals,
			Help: HelpTextRefusals,
		},
		[]string{LabelCommand, LabelReason},
	)

	RecipesRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRecipesRegistered,
			Help: HelpTextRecipesRegistered,
		},
	)

	EditorSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameEditorSessions,
			Help: HelpTextEditorSessions,
		},
	)
)

// Outcome maps a success flag to the result label value
func Outcome(success bool) string {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}
