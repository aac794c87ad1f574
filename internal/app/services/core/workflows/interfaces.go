package workflows

import (
	"context"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
)

type WorkflowUsecase interface {
	AdmitPatient(ctx context.Context, request *requests.AdmitPatientRequest) (*responses.WorkflowResult, error)
	DischargePatient(ctx context.Context, request *requests.DischargePatientRequest) (*responses.WorkflowResult, error)
	DisposePatient(ctx context.Context, request *requests.DisposePatientRequest) (*responses.WorkflowResult, error)
	SwapCompartment(ctx context.Context, request *requests.SwapCompartmentRequest) (*responses.WorkflowResult, error)
	GetSaga(ctx context.Context, sagaID string) (*responses.WorkflowResult, error)
	CheckPendingBills(ctx context.Context, patientUUID string) (*responses.PendingBillCheck, error)
	ListBillableServices(ctx context.Context) ([]responses.BillableServiceItem, error)
	SearchConcepts(ctx context.Context, query string) ([]responses.ConceptItem, error)
}
