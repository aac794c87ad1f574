package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type QueueEmrClient interface {
	ListActiveEntries(ctx context.Context, locationUUID string) ([]emr_dto.QueueEntry, error)
	CreateEntry(ctx context.Context, request *emr_dto.CreateQueueEntryRequest) (*emr_dto.QueueEntry, error)
	CloseEntry(ctx context.Context, entryUUID, endedAt string) (*emr_dto.QueueEntry, error)
}
