package streams

import (
	"context"

	"weblog-analytics/internal/events"
)

// AnalysisProducer publishes WeblogBatchEvents to a partitioned queue for
// asynchronous session analysis.
//
// Partition Strategy for Race Condition Prevention, and achieving parallelism:
//
// The producer partitions by batch ID:
//
//	partitionKey = "<batchID>"
//
// Events with the same partition key are routed to the same partition in the queue.
// Since the consumer processes each partition with a single worker goroutine, all
// deliveries of the same batch (including client replays) are processed sequentially.
// Session reports are keyed by (customerID, batchID), so this single-writer-per-partition
// guarantee ensures that:
//   - No concurrent upserts ever target the same stored report
//   - A replayed batch deterministically overwrites its own report
//   - Data integrity is maintained without requiring distributed locking
//   - Distinct batches still fan out across partitions (throughput optimization)
//
//go:generate mockgen -source=analysis_producer.go -destination=./mocks/analysis_producer_mock.go -package=mocks
type AnalysisProducer interface {
	Produce(ctx context.Context, batchEvent *events.WeblogBatchEvent) error
}

type analysisProducer struct {
	queue *PartitionedQueue[*events.WeblogBatchEvent]
}

func NewAnalysisProducer(queue *PartitionedQueue[*events.WeblogBatchEvent]) AnalysisProducer {
	return &analysisProducer{
		queue: queue,
	}
}

func (producer *analysisProducer) Produce(ctx context.Context, batchEvent *events.WeblogBatchEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Partition by batch identity (single-writer guarantee per report).
	producer.queue.Publish(batchEvent.BatchID, batchEvent)
	metricWeblogBatchPublishedTotal.WithLabelValues(streamWeblogBatch).Inc()
	return nil
}
