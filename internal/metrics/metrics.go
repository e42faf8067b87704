package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/xtding233/relic-gacha/internal/gacha"
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

// Gacha Metrics
var (
	RollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsTotal,
			Help: HelpTextRollsTotal,
		},
		[]string{LabelRarity, LabelSource},
	)

	PityTriggersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePityTriggersTotal,
			Help: HelpTextPityTriggersTotal,
		},
		[]string{LabelRarity},
	)

	EventDrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventDrawsTotal,
			Help: HelpTextEventDrawsTotal,
		},
		[]string{LabelRarity},
	)

	SimulationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsTotal,
			Help: HelpTextSimulationsTotal,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)

// RecordRoll counts one roll result.
func RecordRoll(res gacha.Result) {
	RollsTotal.WithLabelValues(string(res.Item.Rarity), string(res.Source)).Inc()
	if res.Source == gacha.SourcePity {
		PityTriggersTotal.WithLabelValues(string(res.PityReset)).Inc()
	}
}

// RecordEventDraw counts one event pool draw.
func RecordEventDraw(it gacha.Item) {
	EventDrawsTotal.WithLabelValues(string(it.Rarity)).Inc()
}
