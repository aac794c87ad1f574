package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type BillingEmrClient interface {
	ListBillableServices(ctx context.Context) ([]emr_dto.BillableService, error)
	CreateBill(ctx context.Context, request *emr_dto.CreateBillRequest) (*emr_dto.PatientBill, error)
	FindBillsByPatient(ctx context.Context, patientUUID string) ([]emr_dto.PatientBill, error)
}
