package aggregators

import (
	"weblog-analytics/internal/shared/metrics"
)

// metricSessionReportBuiltTotal counts completed analysis runs, labeled by
// the error code of the failure, or empty on success.
//
// A batch replayed through the pipeline increments this metric again: every
// run rebuilds the report in full, so each increment corresponds to one
// Upsert attempt, not one distinct report.
var (
	metricSessionReportBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "session_report_built_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportBuildSeconds = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "report_build_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
