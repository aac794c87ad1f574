package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type BedEmrClient interface {
	AssignBed(ctx context.Context, bedID int, request *emr_dto.AssignBedRequest) (*emr_dto.BedAssignment, error)
	UnassignBed(ctx context.Context, patientUUID, encounterUUID string) error
}
