package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/filestorages"

	"github.com/goccy/go-json"
)

var (
	ErrSessionReportNotFound = errors.New("session report not found")
)

// SessionReportStore keeps one report JSON per analyzed batch under
// session-reports/<customer>/<batch>.json. Upsert overwrites: a report is
// always rebuilt from the full batch, so the latest write is the whole truth
// and there is nothing to merge.
//
//go:generate mockgen -source=session_report_store.go -destination=./mocks/session_report_store_mock.go -package=mocks
type SessionReportStore interface {
	Upsert(ctx context.Context, report *models.SessionReport) error
	Get(ctx context.Context, customerID string, batchID string) (*models.SessionReport, error)
}

type sessionReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSessionReportStore(fileStorage filestorages.FileStorage) SessionReportStore {
	return &sessionReportStore{fileStorage: fileStorage, dir: "session-reports"}
}

func (s *sessionReportStore) Upsert(ctx context.Context, report *models.SessionReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal session report: %w", err)
	}

	key := s.getKey(report.CustomerID, report.BatchID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put session report: %w", err)
	}
	return nil
}

func (s *sessionReportStore) Get(ctx context.Context, customerID string, batchID string) (*models.SessionReport, error) {
	key := s.getKey(customerID, batchID)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSessionReportNotFound
		}
		return nil, fmt.Errorf("failed to get session report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read session report: %w", err)
	}
	var report models.SessionReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session report: %w", err)
	}
	return &report, nil
}

func (s *sessionReportStore) getKey(customerID string, batchID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, customerID, batchID)
}
