package route

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitstack_route_lookups_total",
			Help: "Total number of processor registry lookups",
		},
	)
	ambiguousMatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitstack_route_ambiguous_matches_total",
			Help: "Total number of lookups resolved by first-registered-wins tie-breaking",
		},
	)
	enumerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fitstack_template_enumeration_duration_seconds",
			Help:    "Duration of full template enumeration walks in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 300},
		},
	)
)
