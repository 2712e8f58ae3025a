package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"weblog-analytics/internal/aggregators"
	"weblog-analytics/internal/events"
	internalhttp "weblog-analytics/internal/http"
	"weblog-analytics/internal/ingestors"
	"weblog-analytics/internal/sessions"
	"weblog-analytics/internal/shared/configs"
	"weblog-analytics/internal/shared/filestorages"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/stores"
	"weblog-analytics/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analysisConsumer streams.AnalysisConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "weblog-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stream queue
	weblogBatchQueue := streams.NewSizedPartitionedQueue[*events.WeblogBatchEvent](
		config.Streams.Partitions,
		config.Streams.Buffer,
	)

	// Initialize analysis pipeline
	sessionAssigner := sessions.NewQuarterHourAssigner()
	sessionTagger := sessions.NewSessionTagger(sessionAssigner)
	reportBuilder := aggregators.NewReportBuilder(
		sessionTagger,
		aggregators.NewHitCountAggregator(),
		aggregators.NewSessionDurationAggregator(),
		aggregators.NewUniqueURLAggregator(),
		aggregators.NewEngagementAggregator(),
		aggregators.NewTrafficSummarizer(),
	)
	sessionReportStore := stores.NewSessionReportStore(fileStorage)
	analysisService := aggregators.NewAnalysisService(reportBuilder, sessionReportStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	analysisConsumer := streams.NewAnalysisConsumer(weblogBatchQueue, analysisService, consumerLogger)

	// Initialize ingestionService
	weblogBatchStore := stores.NewWeblogBatchStore(fileStorage)
	weblogParser := ingestors.NewELBLogParser()
	analysisProducer := streams.NewAnalysisProducer(weblogBatchQueue)
	ingestionService := ingestors.NewIngestionService(
		weblogParser,
		weblogBatchStore,
		analysisProducer,
		config.Ingestion.MaxBatchBytes,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, sessionReportStore, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		analysisConsumer: analysisConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting weblog-analytics service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.analysisConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.analysisConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
