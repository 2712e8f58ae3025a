package ingestors

import (
	"fmt"

	"weblog-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "LOGS_1000"
	codeBatchAlreadyProcessed = "LOGS_1001"

	codeInternalBatchStoreFailed      = "LOGS_9000"
	codeInternalAnalysisPublishFailed = "LOGS_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchAlreadyProcessed returns an error when a weblog batch has already been processed.
func errBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "weblog batch already processed", cause)
}

// errInternalBatchStoreFailed returns an error when a weblog batch store operation fails.
func errInternalBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchStoreFailed, fmt.Errorf("weblogBatchStoreFailed: %w", cause))
}

// errInternalAnalysisPublishFailed returns an error when publishing a batch for analysis fails.
func errInternalAnalysisPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAnalysisPublishFailed, fmt.Errorf("analysisPublishFailed: %w", cause))
}
