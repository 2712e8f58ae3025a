package http

import (
	"errors"
	"net/http"

	"weblog-analytics/internal/stores"

	"github.com/goccy/go-json"
)

type getReportHandler struct {
	reportStore stores.SessionReportStore
}

func NewGetReportHandler(reportStore stores.SessionReportStore) AppHttpHandler {
	return &getReportHandler{
		reportStore: reportStore,
	}
}

// Handle processes GET /reports/{batchID} requests.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	custID := customerID(r)
	batch := batchID(r)
	if custID == "" || batch == "" {
		return errReportRequestInvalid("customer ID header and batch ID are required")
	}

	report, err := h.reportStore.Get(r.Context(), custID, batch)
	if err != nil {
		if errors.Is(err, stores.ErrSessionReportNotFound) {
			return errReportNotFound(err)
		}
		return errInternalReportLookupFailed(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(report)
	return nil
}
