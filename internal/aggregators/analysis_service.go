package aggregators

import (
	"context"
	"time"

	"weblog-analytics/internal/events"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
	"weblog-analytics/internal/shared/svcerrors"
	"weblog-analytics/internal/stores"
)

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	Analyze(ctx context.Context, batchEvent *events.WeblogBatchEvent) *svcerrors.ServiceError
}

type analysisService struct {
	reportBuilder ReportBuilder
	reportStore   stores.SessionReportStore
}

func NewAnalysisService(reportBuilder ReportBuilder, reportStore stores.SessionReportStore) AnalysisService {
	return &analysisService{reportBuilder: reportBuilder, reportStore: reportStore}
}

// Analyze rebuilds the session report for one batch from its full event list
// and overwrites whatever report was stored before. Receiving the same batch
// twice therefore converges on the same stored bytes.
func (s *analysisService) Analyze(ctx context.Context, batchEvent *events.WeblogBatchEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started analyzing weblog batch with customer ID: %s, batch ID: %s", batchEvent.CustomerID, batchEvent.BatchID)

	buildStart := time.Now()
	report := s.reportBuilder.Build(batchEvent.CustomerID, batchEvent.BatchID, batchEvent.Events, batchEvent.SkippedLines)
	metricReportBuildSeconds.Observe(time.Since(buildStart).Seconds())

	if err := s.reportStore.Upsert(ctx, report); err != nil {
		svcErr := errInternalSessionReportStoreFailed(err)
		metricSessionReportBuiltTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricSessionReportBuiltTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Str(loggers.FieldCustomerID, batchEvent.CustomerID).
		Str(loggers.FieldBatchID, batchEvent.BatchID).
		Int64("total_events", report.TotalEvents).
		Int("sessions", len(report.SessionHits)).
		Msg("session report built")

	return nil
}
