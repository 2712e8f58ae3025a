package streams

import (
	"weblog-analytics/internal/shared/metrics"
)

var (
	streamWeblogBatch               = "weblog_batch"
	metricWeblogBatchPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "weblog_batch_published_total",
		},
		[]string{"stream_id"},
	)

	metricWeblogBatchConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "weblog_batch_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
