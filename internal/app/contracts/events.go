package contracts

import (
	"context"
	"mortuary-service/internal/app/models"
)

type EventPublisher interface {
	PublishMortuaryEvent(ctx context.Context, event *models.MortuaryEvent) error
}
