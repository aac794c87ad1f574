package occupancy

import (
	"context"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
)

type OccupancyUsecase interface {
	GetBedLayout(ctx context.Context, pagination *requests.Pagination) (*responses.BedLayoutResponse, int, error)
	ListAwaitingPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error)
	ListAdmittedPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error)
	ListDischargedPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error)
}
