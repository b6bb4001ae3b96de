package dummy

import (
	"audio-joiner/src/application/history/entity"
	"context"
	"sync"
)

var _ entity.BatchStore = &BatchStore{}

func NewDummyBatchStore() *BatchStore {
	return &BatchStore{
		Unavailable: false,
		State:       make(map[string]entity.BatchRecord),
	}
}

type BatchStore struct {
	Unavailable bool
	State       map[string]entity.BatchRecord
	mutex       sync.RWMutex
}

func (b *BatchStore) SaveBatch(_ context.Context, record entity.BatchRecord) error {
	if b.Unavailable {
		return NetworkFailure
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.State[record.BatchID] = record

	return nil
}

func (b *BatchStore) GetBatch(_ context.Context, batchID string) (entity.BatchRecord, error) {
	if b.Unavailable {
		return entity.BatchRecord{}, NetworkFailure
	}

	b.mutex.RLock()
	defer b.mutex.RUnlock()

	record, ok := b.State[batchID]
	if !ok {
		return entity.BatchRecord{}, NotFound
	}

	return record, nil
}
