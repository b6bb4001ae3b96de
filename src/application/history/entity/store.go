package entity

import "context"

type BatchStore interface {
	SaveBatch(ctx context.Context, record BatchRecord) error
	GetBatch(ctx context.Context, batchID string) (BatchRecord, error)
}
