package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"weblog-analytics/internal/aggregators"
	"weblog-analytics/internal/events"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
	"weblog-analytics/internal/shared/svcerrors"
	"weblog-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=analysis_consumer.go -destination=./mocks/analysis_consumer_mock.go -package=mocks
type AnalysisConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type analysisConsumer struct {
	queue           *PartitionedQueue[*events.WeblogBatchEvent]
	analysisService aggregators.AnalysisService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewAnalysisConsumer(queue *PartitionedQueue[*events.WeblogBatchEvent], analysisService aggregators.AnalysisService, logger loggers.Logger) AnalysisConsumer {
	return &analysisConsumer{
		queue:           queue,
		analysisService: analysisService,
		stopCh:          make(chan struct{}),
		logger:          logger,
	}
}

// Start spawns 1 worker goroutine per partition.
// Each partition is a single-writer lane for the batch IDs routed by the producer.
func (consumer *analysisConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *analysisConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *analysisConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan *events.WeblogBatchEvent) {

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case batchEvent, ok := <-ch:
			if !ok {
				return
			}
			consumer.analyzeBatchEvent(ctx, partitionIndex, batchEvent)
		}
	}
}

// analyzeBatchEvent runs one batch through the analysis service.
// Panic recovery keeps a poisoned batch from killing the partition worker.
func (consumer *analysisConsumer) analyzeBatchEvent(ctx context.Context, partitionIndex int, batchEvent *events.WeblogBatchEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			// Convert panic value to error
			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricWeblogBatchConsumedTotal.WithLabelValues(streamWeblogBatch, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)
	svcError := consumer.analysisService.Analyze(ctx, batchEvent)
	if svcError != nil {
		metricWeblogBatchConsumedTotal.WithLabelValues(streamWeblogBatch, svcError.Code).Inc()
	} else {
		metricWeblogBatchConsumedTotal.WithLabelValues(streamWeblogBatch, metrics.ValueNoError).Inc()
	}
}
