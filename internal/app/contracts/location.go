package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type AdmissionLocationEmrClient interface {
	GetAdmissionLocation(ctx context.Context, wardUUID string) (*emr_dto.AdmissionLocation, error)
	ListAdmissionLocations(ctx context.Context) ([]emr_dto.AdmissionLocation, error)
}
