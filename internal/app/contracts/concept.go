package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type ConceptEmrClient interface {
	SearchConcepts(ctx context.Context, query string) ([]emr_dto.Concept, error)
}
