package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type ObservationEmrClient interface {
	ListObsByEncounter(ctx context.Context, encounterUUID string) ([]emr_dto.Obs, error)
}
