package aggregators

import (
	"sync"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/sessions"
)

//go:generate mockgen -source=report_builder.go -destination=./mocks/report_builder_mock.go -package=mocks
type ReportBuilder interface {
	// Build sessionizes the batch and reduces it into a complete report.
	// The report is a pure function of the inputs: rebuilding from the
	// same batch yields an identical report, row order included.
	Build(customerID string, batchID string, weblogEvents []*models.LogEvent, skippedLines int64) *models.SessionReport
}

type reportBuilder struct {
	tagger            sessions.SessionTagger
	hitCounts         HitCountAggregator
	sessionDurations  SessionDurationAggregator
	uniqueURLs        UniqueURLAggregator
	engagements       EngagementAggregator
	trafficSummarizer TrafficSummarizer
}

func NewReportBuilder(
	tagger sessions.SessionTagger,
	hitCounts HitCountAggregator,
	sessionDurations SessionDurationAggregator,
	uniqueURLs UniqueURLAggregator,
	engagements EngagementAggregator,
	trafficSummarizer TrafficSummarizer,
) ReportBuilder {
	return &reportBuilder{
		tagger:            tagger,
		hitCounts:         hitCounts,
		sessionDurations:  sessionDurations,
		uniqueURLs:        uniqueURLs,
		engagements:       engagements,
		trafficSummarizer: trafficSummarizer,
	}
}

func (b *reportBuilder) Build(customerID string, batchID string, weblogEvents []*models.LogEvent, skippedLines int64) *models.SessionReport {
	// Tag once; every pass below reads the same tagged slice.
	tagged := b.tagger.Tag(weblogEvents)

	report := &models.SessionReport{
		CustomerID:   customerID,
		BatchID:      batchID,
		TotalEvents:  int64(len(weblogEvents)),
		SkippedLines: skippedLines,
	}

	// Each pass writes a distinct report field, so they run in parallel
	// without locks.
	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		report.SessionHits = b.hitCounts.Aggregate(tagged)
	}()
	go func() {
		defer wg.Done()
		report.AvgSessionTimes = b.sessionDurations.Aggregate(tagged)
	}()
	go func() {
		defer wg.Done()
		report.UniqueURLCounts = b.uniqueURLs.Aggregate(tagged)
	}()
	go func() {
		defer wg.Done()
		report.Engagements = b.engagements.Aggregate(tagged)
	}()
	go func() {
		defer wg.Done()
		report.RequestsByUserAgent = b.trafficSummarizer.Summarize(weblogEvents)
	}()
	wg.Wait()

	return report
}
