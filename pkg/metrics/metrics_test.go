package metrics_test

import (
	"testing"

	"github.com/mentionscope/mentions-worker/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const stream = "mentions_stream"

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestStreamCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.StreamEntriesConsumed.WithLabelValues(stream))
	beforeProcessed := testutil.ToFloat64(metrics.StreamEntriesProcessed.WithLabelValues(stream))
	beforeFiltered := testutil.ToFloat64(metrics.EntriesFiltered)
	beforeFailed := testutil.ToFloat64(metrics.StreamEntriesFailed.WithLabelValues(stream))

	metrics.StreamEntriesConsumed.WithLabelValues(stream).Inc()
	metrics.StreamEntriesProcessed.WithLabelValues(stream).Inc()
	metrics.EntriesFiltered.Inc()
	metrics.StreamEntriesFailed.WithLabelValues(stream).Inc()

	if got := testutil.ToFloat64(metrics.StreamEntriesConsumed.WithLabelValues(stream)); got != beforeConsumed+1 {
		t.Fatalf("StreamEntriesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.StreamEntriesProcessed.WithLabelValues(stream)); got != beforeProcessed+1 {
		t.Fatalf("StreamEntriesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.EntriesFiltered); got != beforeFiltered+1 {
		t.Fatalf("EntriesFiltered: got=%v want=%v", got, beforeFiltered+1)
	}
	if got := testutil.ToFloat64(metrics.StreamEntriesFailed.WithLabelValues(stream)); got != beforeFailed+1 {
		t.Fatalf("StreamEntriesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestSentimentResults_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	posBefore := testutil.ToFloat64(metrics.SentimentResults.WithLabelValues("POSITIVE"))
	negBefore := testutil.ToFloat64(metrics.SentimentResults.WithLabelValues("NEGATIVE"))

	metrics.SentimentResults.WithLabelValues("POSITIVE").Inc()
	metrics.SentimentResults.WithLabelValues("POSITIVE").Inc()

	if got := testutil.ToFloat64(metrics.SentimentResults.WithLabelValues("POSITIVE")); got != posBefore+2 {
		t.Fatalf("SentimentResults(POSITIVE): got=%v want=%v", got, posBefore+2)
	}
	if got := testutil.ToFloat64(metrics.SentimentResults.WithLabelValues("NEGATIVE")); got != negBefore {
		t.Fatalf("SentimentResults(NEGATIVE): got=%v want=%v", got, negBefore)
	}
}

func TestPersistFailures_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.PersistFailures)
	metrics.PersistFailures.Inc()
	if got := testutil.ToFloat64(metrics.PersistFailures); got != before+1 {
		t.Fatalf("PersistFailures: got=%v want=%v", got, before+1)
	}
}
