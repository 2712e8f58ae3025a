package stores

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/filestorages"
	"weblog-analytics/internal/shared/filestorages/mocks"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReport() *models.SessionReport {
	return &models.SessionReport{
		CustomerID:   "cus-paypay",
		BatchID:      "batch-123",
		TotalEvents:  3,
		SkippedLines: 1,
		SessionHits: []models.SessionHitCount{
			{IP: "10.0.0.1", SessionID: "20150722-06-0015-10-0-0-1", TotalHits: 2},
			{IP: "10.0.0.2", SessionID: "20150722-06-0015-10-0-0-2", TotalHits: 1},
		},
		AvgSessionTimes: []models.IPSessionDuration{
			{IP: "10.0.0.1", TotalSessions: 1, TotalDurationSec: 300, AvgSessionTimeMin: 5},
		},
		UniqueURLCounts: []models.SessionUniqueURLs{
			{SessionID: "20150722-06-0015-10-0-0-1", NumUniqueHits: 2},
		},
		Engagements: []models.UserEngagement{
			{User: "10.0.0.1_abc", SessionID: "20150722-06-0015-10-0-0-1", DurationMin: 5},
		},
		RequestsByUserAgent: map[string]int64{
			"Chrome": 2,
			"curl":   1,
		},
	}
}

func TestNewSessionReportStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	assert.NotNil(t, store)
}

func TestSessionReportStore_Upsert_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	report := newTestReport()

	expectedKey := "session-reports/cus-paypay/batch-123.json"
	expectedJSON, _ := json.Marshal(report)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Upsert(ctx, report)
	assert.NoError(t, err)
}

func TestSessionReportStore_Upsert_OverwritesExisting(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	report := newTestReport()

	// Reanalysis rebuilds the report from the full batch, so the second
	// write replaces the first.
	mockFileStorage.EXPECT().
		Put(ctx, "session-reports/cus-paypay/batch-123.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		Return(&filestorages.PutResult{}, nil).
		Times(2)

	require.NoError(t, store.Upsert(ctx, report))
	require.NoError(t, store.Upsert(ctx, report))
}

func TestSessionReportStore_Upsert_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	putError := errors.New("storage error")

	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		Return(nil, putError)

	err := store.Upsert(ctx, newTestReport())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put session report")
	assert.Contains(t, err.Error(), "storage error")
}

func TestSessionReportStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	expectedReport := newTestReport()

	expectedKey := "session-reports/cus-paypay/batch-123.json"
	jsonData, _ := json.Marshal(expectedReport)
	readCloser := io.NopCloser(bytes.NewReader(jsonData))

	mockFileStorage.EXPECT().
		Get(ctx, expectedKey).
		Return(readCloser, nil)

	report, err := store.Get(ctx, "cus-paypay", "batch-123")
	require.NoError(t, err)
	assert.Equal(t, expectedReport, report)
}

func TestSessionReportStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Get(ctx, "session-reports/cus-paypay/batch-missing.json").
		Return(nil, filestorages.ErrFileNotFound)

	report, err := store.Get(ctx, "cus-paypay", "batch-missing")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrSessionReportNotFound)
}

func TestSessionReportStore_Get_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	storageError := errors.New("storage error")

	mockFileStorage.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, storageError)

	report, err := store.Get(ctx, "cus-paypay", "batch-123")
	assert.Nil(t, report)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get session report")
	assert.NotErrorIs(t, err, ErrSessionReportNotFound)
}

func TestSessionReportStore_Get_ReadError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	readCloser := io.NopCloser(&errorReader{err: errors.New("read error")})

	mockFileStorage.EXPECT().
		Get(ctx, gomock.Any()).
		Return(readCloser, nil)

	report, err := store.Get(ctx, "cus-paypay", "batch-123")
	assert.Nil(t, report)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read session report")
}

func TestSessionReportStore_Get_UnmarshalError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	readCloser := io.NopCloser(bytes.NewReader([]byte(`{"invalid": json}`)))

	mockFileStorage.EXPECT().
		Get(ctx, gomock.Any()).
		Return(readCloser, nil)

	report, err := store.Get(ctx, "cus-paypay", "batch-123")
	assert.Nil(t, report)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal session report")
}

func TestSessionReportStore_Get_ClosesReadCloser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	jsonData, _ := json.Marshal(newTestReport())
	readCloser := &closableReader{Reader: bytes.NewReader(jsonData)}

	mockFileStorage.EXPECT().
		Get(ctx, gomock.Any()).
		Return(readCloser, nil)

	report, err := store.Get(ctx, "cus-paypay", "batch-123")
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.True(t, readCloser.closed, "ReadCloser should be closed")
}

func TestSessionReportStore_Upsert_ByteStableAcrossRuns(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionReportStore(mockFileStorage)

	ctx := context.Background()
	report := newTestReport()

	var writes [][]byte
	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			writes = append(writes, data)
			return &filestorages.PutResult{FileKey: key}, nil
		}).
		Times(2)

	require.NoError(t, store.Upsert(ctx, report))
	require.NoError(t, store.Upsert(ctx, report))

	require.Len(t, writes, 2)
	assert.Equal(t, writes[0], writes[1], "same report must serialize identically")
}

// errorReader is a reader that always returns an error
type errorReader struct {
	err error
}

func (r *errorReader) Read(p []byte) (n int, err error) {
	return 0, r.err
}

// closableReader is a ReadCloser that tracks if it was closed
type closableReader struct {
	io.Reader
	closed bool
}

func (r *closableReader) Close() error {
	r.closed = true
	return nil
}
