package stores

import (
	"context"
	"errors"
	"io"
	"testing"

	"weblog-analytics/internal/shared/filestorages"
	"weblog-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewWeblogBatchStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWeblogBatchStore(mockFileStorage)

	assert.NotNil(t, store)
}

func TestWeblogBatchStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWeblogBatchStore(mockFileStorage)

	ctx := context.Background()
	payload := []byte(`2015-07-22T09:00:28.019143Z lb 10.0.0.1:54635 10.0.6.158:80 0.000022 0.026109 0.00002 200 200 0 699 "GET http://example.com/a HTTP/1.1" "curl/7.38.0" - -`)

	expectedKey := "raw-batches/cus-paypay/batch-123.log"

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, data, "raw payload must be stored byte for byte")
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, "cus-paypay", "batch-123", payload)
	assert.NoError(t, err)
}

func TestWeblogBatchStore_Put_FileAlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWeblogBatchStore(mockFileStorage)

	ctx := context.Background()
	expectedKey := "raw-batches/cus-paypay/batch-123.log"

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(ctx, "cus-paypay", "batch-123", []byte("payload"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrWeblogBatchAlreadyExists)
}

func TestWeblogBatchStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWeblogBatchStore(mockFileStorage)

	ctx := context.Background()
	storageError := errors.New("storage error")

	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, storageError)

	err := store.Put(ctx, "cus-paypay", "batch-123", []byte("payload"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put weblog batch")
	assert.Contains(t, err.Error(), "storage error")
	assert.NotErrorIs(t, err, ErrWeblogBatchAlreadyExists)
}

func TestWeblogBatchStore_Put_KeyGeneration(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewWeblogBatchStore(mockFileStorage)

	ctx := context.Background()

	tests := []struct {
		name        string
		customerID  string
		batchID     string
		expectedKey string
	}{
		{
			name:        "standard batch",
			customerID:  "cus-paypay",
			batchID:     "batch-123",
			expectedKey: "raw-batches/cus-paypay/batch-123.log",
		},
		{
			name:        "different customer",
			customerID:  "cus-other",
			batchID:     "batch-456",
			expectedKey: "raw-batches/cus-other/batch-456.log",
		},
		{
			name:        "ULID batch ID",
			customerID:  "cus-paypay",
			batchID:     "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			expectedKey: "raw-batches/cus-paypay/01ARZ3NDEKTSV4RRFFQ69G5FAV.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockFileStorage.EXPECT().
				Put(ctx, tt.expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
				Return(&filestorages.PutResult{FileKey: tt.expectedKey}, nil)

			err := store.Put(ctx, tt.customerID, tt.batchID, []byte("payload"))
			assert.NoError(t, err)
		})
	}
}
