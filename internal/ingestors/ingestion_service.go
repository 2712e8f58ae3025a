package ingestors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"weblog-analytics/internal/events"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
	"weblog-analytics/internal/shared/ulid"
	"weblog-analytics/internal/stores"
	"weblog-analytics/internal/streams"
)

const (
	defaultMaxBatchBytes = 8 * 1024 * 1024
)

const (
	FormatText = "text"
)

// IngestResult represents the result of a weblog batch ingestion operation.
type IngestResult struct {
	BatchID      string
	EventCount   int
	SkippedLines int64
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch accepts a raw ELB access log payload, archives it and
	// queues it for analysis.
	IngestBatch(ctx context.Context, customerID string, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	weblogParser     WeblogParser
	batchStore       stores.WeblogBatchStore
	analysisProducer streams.AnalysisProducer
	maxBatchBytes    int
}

func NewIngestionService(weblogParser WeblogParser, batchStore stores.WeblogBatchStore, analysisProducer streams.AnalysisProducer, maxBatchBytes int) IngestionService {
	if maxBatchBytes <= 0 {
		maxBatchBytes = defaultMaxBatchBytes
	}
	return &ingestionService{
		weblogParser:     weblogParser,
		batchStore:       batchStore,
		analysisProducer: analysisProducer,
		maxBatchBytes:    maxBatchBytes,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, customerID string, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting weblog batch with customer ID: %s, idempotency key: %s, content type: %s", customerID, idempotencyKey, contentType)

	payload, err := s.validatePayload(customerID, contentType, r)
	if err != nil {
		return nil, err
	}

	parseResult, err := s.weblogParser.Parse(bytes.NewReader(payload))
	if err != nil {
		return nil, errValidationFailed("unreadable log payload", err)
	}
	if len(parseResult.Events) == 0 {
		return nil, errValidationFailed("no parseable log lines in payload", nil)
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	// Archive the raw payload before queueing. A replayed idempotency key
	// fails the conditional write here and never reaches the queue.
	err = s.batchStore.Put(ctx, customerID, batchID, payload)
	if err != nil {
		if errors.Is(err, stores.ErrWeblogBatchAlreadyExists) {
			svcError := errBatchAlreadyProcessed(err)
			metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		return nil, errInternalBatchStoreFailed(err)
	}

	batchEvent := &events.WeblogBatchEvent{
		CustomerID:   customerID,
		BatchID:      batchID,
		Events:       parseResult.Events,
		SkippedLines: parseResult.SkippedLines,
	}
	err = s.analysisProducer.Produce(ctx, batchEvent)
	if err != nil {
		return nil, errInternalAnalysisPublishFailed(err)
	}

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricLinesSkippedTotal.Add(float64(parseResult.SkippedLines))
	return &IngestResult{
		BatchID:      batchID,
		EventCount:   len(parseResult.Events),
		SkippedLines: parseResult.SkippedLines,
	}, nil
}

func (s *ingestionService) validatePayload(customerID string, contentType string, r io.Reader) ([]byte, error) {
	if customerID == "" {
		return nil, errValidationFailed("customerID is required", nil)
	}

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	if !strings.Contains(strings.ToLower(contentType), FormatText) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported content type: %q", contentType), nil)
	}

	payload, err := s.readWithLimit(r, s.maxBatchBytes)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}

	return payload, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	payload, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, errValidationFailed("unreadable request body", err)
	}
	if len(payload) > max {
		return nil, errValidationFailed(fmt.Sprintf("batch too large: must be <= %d bytes", max), nil)
	}
	return payload, nil
}
