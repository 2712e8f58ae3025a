package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"weblog-analytics/internal/shared/filestorages"
)

var (
	ErrWeblogBatchAlreadyExists = errors.New("weblog batch already exists")
)

// WeblogBatchStore archives the raw uploaded payload, byte for byte, under
// raw-batches/<customer>/<batch>.log. Put simulates S3's conditional PUT:
// with AllowOverwrite false the write is an atomic create-if-not-exists, so
// two uploads racing on the same batch id resolve to exactly one stored copy
// and the loser gets ErrWeblogBatchAlreadyExists. That failure is what makes
// replayed idempotency keys detectable upstream.
//
//go:generate mockgen -source=weblog_batch_store.go -destination=./mocks/weblog_batch_store_mock.go -package=mocks
type WeblogBatchStore interface {
	Put(ctx context.Context, customerID string, batchID string, payload []byte) error
}

type weblogBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewWeblogBatchStore(fileStorage filestorages.FileStorage) WeblogBatchStore {
	return &weblogBatchStore{fileStorage: fileStorage, dir: "raw-batches"}
}

func (s *weblogBatchStore) Put(ctx context.Context, customerID string, batchID string, payload []byte) error {
	key := fmt.Sprintf("%s/%s/%s.log", s.dir, customerID, batchID)

	_, err := s.fileStorage.Put(ctx, key, bytes.NewReader(payload), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrWeblogBatchAlreadyExists
		}
		return fmt.Errorf("failed to put weblog batch: %w", err)
	}
	return nil
}
