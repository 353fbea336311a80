package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	membraneSubsystem = "membrane_calculator"

	evaluationsTotal = "evaluations_total"
	cacheLookupTotal = "cache_lookups_total"
	reportsTotal     = "reports_total"
	breakEvenYears   = "break_even_years"

	// Labels
	energyTypeLabel   = "energy_type"
	cacheResultLabel  = "result"
	reportFormatLabel = "format"
)

var evaluationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: membraneSubsystem,
		Name:      evaluationsTotal,
		Help:      "number of savings model evaluations",
	},
	[]string{energyTypeLabel},
)

var cacheLookupTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: membraneSubsystem,
		Name:      cacheLookupTotal,
		Help:      "result cache lookups by outcome",
	},
	[]string{cacheResultLabel},
)

var reportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: membraneSubsystem,
		Name:      reportsTotal,
		Help:      "number of generated reports",
	},
	[]string{reportFormatLabel},
)

var breakEvenYearsMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: membraneSubsystem,
		Name:      breakEvenYears,
		Help:      "distribution of computed break-even years",
		Buckets:   []float64{0, 1, 2, 5, 10, 15, 20, 30, 50},
	},
)

func IncreaseEvaluationsMetric(energyType string) {
	evaluationsTotalMetric.With(prometheus.Labels{energyTypeLabel: energyType}).Inc()
}

func IncreaseCacheLookupMetric(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupTotalMetric.With(prometheus.Labels{cacheResultLabel: result}).Inc()
}

func IncreaseReportsMetric(format string) {
	reportsTotalMetric.With(prometheus.Labels{reportFormatLabel: format}).Inc()
}

func ObserveBreakEven(years float64) {
	breakEvenYearsMetric.Observe(years)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(evaluationsTotalMetric)
	prometheus.MustRegister(cacheLookupTotalMetric)
	prometheus.MustRegister(reportsTotalMetric)
	prometheus.MustRegister(breakEvenYearsMetric)
}
