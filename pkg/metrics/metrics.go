// Package metrics holds prometheus instrumentation for recommendations, tracking and catalog import.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// recommendation outcomes
const (
	OutcomeOK           = "ok"
	OutcomeEmptyHistory = "empty_history"
	OutcomeNoVocabulary = "no_vocabulary"
	OutcomeInvalidUser  = "invalid_user"
	OutcomeError        = "error"
)

var (
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsrec_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsrec_recommend_duration_seconds",
			Help:    "Duration of recommendation computation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsrec_recommend_result_size",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	InteractionsTracked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsrec_interactions_tracked_total",
			Help: "Total number of tracked interactions",
		},
	)

	ArticlesImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsrec_articles_imported_total",
			Help: "Total number of new catalog articles by category",
		},
		[]string{"category"},
	)

	FeedErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsrec_feed_errors_total",
			Help: "Total number of failed catalog feed fetches",
		},
	)
)

// RecordRecommendation records outcome, latency and result size of one recommendation request
func RecordRecommendation(outcome string, started time.Time, size int) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(time.Since(started).Seconds())
	RecommendResultSize.Observe(float64(size))
}
