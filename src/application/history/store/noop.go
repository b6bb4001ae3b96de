package store

import (
	"audio-joiner/src/application/history/entity"
	"context"

	"github.com/apex/log"
)

var _ entity.BatchStore = NoopBatchStore{}

// NoopBatchStore is used when no batch table is configured
type NoopBatchStore struct{}

func (NoopBatchStore) SaveBatch(_ context.Context, record entity.BatchRecord) error {
	log.WithField("batch_id", record.BatchID).Debug("Batch history disabled, not saving record")
	return nil
}

func (NoopBatchStore) GetBatch(_ context.Context, batchID string) (entity.BatchRecord, error) {
	return entity.BatchRecord{}, nil
}
