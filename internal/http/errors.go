package http

import (
	"fmt"

	"weblog-analytics/internal/shared/svcerrors"
)

const (
	codeReportValidationFailed     = "RPT_1000"
	codeReportNotFound             = "RPT_1001"
	codeInternalReportLookupFailed = "RPT_9000"
)

func errReportRequestInvalid(message string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeReportValidationFailed, message, nil)
}

func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "session report not found", cause)
}

func errInternalReportLookupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportLookupFailed, fmt.Errorf("sessionReportLookupFailed: %w", cause))
}
