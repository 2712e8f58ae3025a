package events

import "weblog-analytics/internal/models"

// WeblogBatchEvent carries one accepted batch from ingestion to analysis.
// Events hold the parsed log lines in upload order; lines the parser dropped
// travel only as a count so the final report can state how much of the
// upload it covers.
//
// The event is the unit of work on the analysis queue: one event in, one
// session report out. Batches are never split or merged in flight, which is
// what lets a report be rebuilt from scratch on every run.
type WeblogBatchEvent struct {
	CustomerID   string
	BatchID      string
	Events       []*models.LogEvent
	SkippedLines int64
}
