package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	StreamEntriesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_entries_consumed_total",
			Help: "Number of entries delivered from the stream",
		},
		[]string{"stream"},
	)
	StreamEntriesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_entries_processed_total",
			Help: "Number of entries processed and persisted successfully",
		},
		[]string{"stream"},
	)
	StreamEntriesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_entries_failed_total",
			Help: "Number of entries whose processing failed",
		},
		[]string{"stream"},
	)
)

var (
	EntriesFiltered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stream_entries_filtered_total",
			Help: "Number of entries dropped by the noise filter",
		},
	)
	SentimentResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_results_total",
			Help: "Sentiment classification results by label",
		},
		[]string{"label"},
	)
	PersistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mentions_persist_failures_total",
			Help: "Number of failed mention inserts",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			StreamEntriesConsumed, StreamEntriesProcessed, StreamEntriesFailed,
			EntriesFiltered, SentimentResults, PersistFailures,
		)
	})
}
