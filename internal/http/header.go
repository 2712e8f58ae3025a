package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	headerRequestID      = "x-request-id"
	headerContentType    = "content-type"
	headerIdempotencyKey = "idempotency-key"
	headerCustomerID     = "x-customer-id"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func contentType(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerContentType))
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

func customerID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerCustomerID))
}

// batchID reads the {batchID} route parameter. The batch ID doubles as the
// idempotency key the batch was uploaded under.
func batchID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "batchID"))
}
