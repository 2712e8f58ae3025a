package http

import (
	"net/http"

	"weblog-analytics/internal/ingestors"

	"github.com/goccy/go-json"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// IngestAckResponse acknowledges an accepted weblog batch. Analysis runs
// asynchronously; the batch ID is the handle for fetching the session report.
type IngestAckResponse struct {
	BatchID      string `json:"batchId"`
	TotalEvents  int    `json:"totalEvents"`
	SkippedLines int64  `json:"skippedLines"`
}

type ingestWeblogHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestWeblogHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestWeblogHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /weblogs requests.
func (h *ingestWeblogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), customerID(r), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(IngestAckResponse{
		BatchID:      result.BatchID,
		TotalEvents:  result.EventCount,
		SkippedLines: result.SkippedLines,
	})
	return nil
}
