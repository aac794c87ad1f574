package contracts

import (
	"context"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/fhir_dto"
)

type EncounterEmrClient interface {
	CreateEncounter(ctx context.Context, request *emr_dto.CreateEncounterRequest) (*emr_dto.Encounter, error)
	VoidEncounter(ctx context.Context, encounterUUID, reason string) error
	FindEncountersByPatientAndType(ctx context.Context, patientUUID, encounterTypeUUID string) ([]emr_dto.Encounter, error)
}

type EncounterFhirClient interface {
	SearchEncounters(ctx context.Context, encounterTypeUUID, locationUUID string, count, offset int) ([]fhir_dto.Encounter, int, error)
}
