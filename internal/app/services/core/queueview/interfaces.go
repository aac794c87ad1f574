package queueview

import (
	"context"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
)

type QueueUsecase interface {
	ListQueueEntries(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error)
	ReleaseQueueEntry(ctx context.Context, queueEntryUUID string, request *requests.ReleaseQueueEntryRequest) error
}
