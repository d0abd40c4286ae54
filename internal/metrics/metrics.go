// Package metrics registers the Prometheus instruments for the search
// surface and exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arcuspath",
		Name:      "searches_total",
		Help:      "Provider searches served, by sort option.",
	}, []string{"sort"})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "arcuspath",
		Name:      "search_duration_seconds",
		Help:      "Wall time of the search pipeline including the snapshot fetch.",
		Buckets:   prometheus.DefBuckets,
	})

	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "arcuspath",
		Name:      "search_results",
		Help:      "Total matching providers per search before pagination.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})
)
