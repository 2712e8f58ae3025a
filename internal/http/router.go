package http

import (
	"net/http"

	"weblog-analytics/internal/ingestors"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
	"weblog-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, reportStore stores.SessionReportStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestWeblogHandler := NewIngestWeblogHandler(ingestionService)
	getReportHandler := NewGetReportHandler(reportStore)

	// Routes
	router.Post("/weblogs", errorHandlingAdapter(ingestWeblogHandler))
	router.Get("/reports/{batchID}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
