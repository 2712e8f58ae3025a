package aggregators

import (
	"fmt"

	"weblog-analytics/internal/shared/svcerrors"
)

const (
	codeInternalSessionReportStoreFailed = "ANA_9000"
)

// errInternalSessionReportStoreFailed returns an error when a session report store operation fails.
func errInternalSessionReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSessionReportStoreFailed, fmt.Errorf("sessionReportStoreFailed: %w", cause))
}
