package contracts

import (
	"context"
	"mortuary-service/internal/app/models"
)

type SagaRepository interface {
	InsertSaga(ctx context.Context, saga *models.Saga) error
	UpdateSaga(ctx context.Context, saga *models.Saga) error
	FindSagaByID(ctx context.Context, sagaID string) (*models.Saga, error)
	FindSagasByPatient(ctx context.Context, patientUUID string) ([]models.Saga, error)
}
