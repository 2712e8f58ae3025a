package ingestors

import (
	"weblog-analytics/internal/shared/metrics"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricLinesSkippedTotal counts log lines the parser dropped across
	// all accepted batches. A climbing rate usually means a log format
	// drift upstream, not client misuse.
	metricLinesSkippedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_skipped_total",
		},
	)
)
