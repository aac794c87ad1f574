package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
)

type PatientEmrClient interface {
	FindDeceasedPatientByID(ctx context.Context, patientUUID string) (*emr_dto.DeceasedPatient, error)
	SearchDeceasedPatients(ctx context.Context, query string, limit, startIndex int) (*emr_dto.DeceasedPatientList, error)
}
