package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type VisitEmrClient interface {
	// FindActiveVisits resolves open visits for the whole patient set in one
	// query rather than one lookup per patient.
	FindActiveVisits(ctx context.Context, patientUUIDs []string) ([]emr_dto.Visit, error)
	CreateVisit(ctx context.Context, request *emr_dto.CreateVisitRequest) (*emr_dto.Visit, error)
	EndVisit(ctx context.Context, visitUUID, stopDatetime string) (*emr_dto.Visit, error)
}
