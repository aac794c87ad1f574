package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type PersonEmrClient interface {
	CreatePersonAttribute(ctx context.Context, personUUID string, request *emr_dto.CreatePersonAttributeRequest) (*emr_dto.PersonAttribute, error)
}
