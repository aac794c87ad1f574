package contracts

import (
	"context"
	"mortuary-service/internal/app/models"
)

type SessionService interface {
	ParseSessionData(ctx context.Context, token string) (*models.Session, error)
}
