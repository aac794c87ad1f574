package reports

import (
	"context"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePatientClient struct{}

func (c *fakePatientClient) FindDeceasedPatientByID(ctx context.Context, patientUUID string) (*emr_dto.DeceasedPatient, error) {
	return &emr_dto.DeceasedPatient{
		UUID: patientUUID,
		Person: emr_dto.Person{
			UUID:      "person-1",
			Display:   "John Otieno",
			DeathDate: "2026-08-20",
		},
	}, nil
}

func (c *fakePatientClient) SearchDeceasedPatients(ctx context.Context, query string, limit, startIndex int) (*emr_dto.DeceasedPatientList, error) {
	return &emr_dto.DeceasedPatientList{}, nil
}

type fakeEncounterClient struct {
	encountersByType map[string][]emr_dto.Encounter
}

func (c *fakeEncounterClient) CreateEncounter(ctx context.Context, request *emr_dto.CreateEncounterRequest) (*emr_dto.Encounter, error) {
	return nil, nil
}

func (c *fakeEncounterClient) VoidEncounter(ctx context.Context, encounterUUID, reason string) error {
	return nil
}

func (c *fakeEncounterClient) FindEncountersByPatientAndType(ctx context.Context, patientUUID, encounterTypeUUID string) ([]emr_dto.Encounter, error) {
	return c.encountersByType[encounterTypeUUID], nil
}

type fakeObservationClient struct {
	observations []emr_dto.Obs
}

func (c *fakeObservationClient) ListObsByEncounter(ctx context.Context, encounterUUID string) ([]emr_dto.Obs, error) {
	return c.observations, nil
}

type fakeReportStorage struct {
	objects map[string][]byte
}

func (s *fakeReportStorage) UploadReport(ctx context.Context, objectName string, content []byte, contentType string) (string, error) {
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[objectName] = content
	return objectName, nil
}

func reportConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Mortuary: config.Mortuary{
			DischargeEncounterType: "enc-type-discharge",
			DisposalEncounterType:  "enc-type-dispose",
			AutopsyEncounterType:   "enc-type-autopsy",
		},
		Reports: config.Reports{
			ConceptReleasedTo:       "concept-released-to",
			ConceptBurialPermit:     "concept-burial-permit",
			ConceptNextOfKin:        "concept-next-of-kin",
			ConceptAutopsyFindings:  "concept-autopsy-findings",
			ConceptCauseOfDeath:     "concept-cause-of-death",
			ConceptPathologistNotes: "concept-pathologist-notes",
		},
	}
}

func newReportUsecaseFixture(encounters *fakeEncounterClient, observations *fakeObservationClient, storage *fakeReportStorage) *reportUsecase {
	return &reportUsecase{
		PatientEmrClient:     &fakePatientClient{},
		EncounterEmrClient:   encounters,
		ObservationEmrClient: observations,
		ReportStorage:        storage,
		InternalConfig:       reportConfig(),
		Log:                  zap.NewNop(),
	}
}

func TestComposeGatePassReport(t *testing.T) {
	encounters := &fakeEncounterClient{encountersByType: map[string][]emr_dto.Encounter{
		"enc-type-dispose": {
			{UUID: "enc-old", EncounterDatetime: "2026-08-20T08:00:00.000+0300"},
			{UUID: "enc-new", EncounterDatetime: "2026-08-25T08:00:00.000+0300"},
			{UUID: "enc-voided", EncounterDatetime: "2026-08-28T08:00:00.000+0300", Voided: true},
		},
	}}
	observations := &fakeObservationClient{observations: []emr_dto.Obs{
		// Display names deliberately misleading: matching is by concept id.
		{Concept: emr_dto.ResourceRef{UUID: "concept-released-to", Display: "Something Else"}, Value: "Jane Otieno"},
		{Concept: emr_dto.ResourceRef{UUID: "concept-burial-permit"}, Value: "BP-2026-0042"},
		{Concept: emr_dto.ResourceRef{UUID: "concept-unrelated"}, Value: "noise"},
	}}
	storage := &fakeReportStorage{}

	usecase := newReportUsecaseFixture(encounters, observations, storage)
	response, err := usecase.ComposeReport(context.Background(), &requests.ComposeReportRequest{
		PatientUUID: "patient-1",
		ReportType:  constvars.ReportTypeGatePass,
	})

	assert.NoError(t, err)
	assert.Equal(t, constvars.ReportTypeGatePass, response.ReportType)
	assert.Equal(t, "Jane Otieno", response.Fields["Released to"])
	assert.Equal(t, "BP-2026-0042", response.Fields["Burial permit number"])
	assert.Equal(t, "", response.Fields["Next of kin"], "a missing observation leaves the field blank")

	assert.Len(t, storage.objects, 1)
	rendered := string(storage.objects[response.ObjectName])
	assert.Contains(t, rendered, "Mortuary Gate Pass")
	assert.Contains(t, rendered, "John Otieno")
	assert.Contains(t, rendered, "BP-2026-0042")
	assert.True(t, strings.HasPrefix(response.ObjectName, "reports/patient-1/"))
}

func TestComposeGatePassFallsBackToDischarge(t *testing.T) {
	encounters := &fakeEncounterClient{encountersByType: map[string][]emr_dto.Encounter{
		"enc-type-discharge": {
			{UUID: "enc-discharge", EncounterDatetime: "2026-08-24T08:00:00.000+0300"},
		},
	}}
	storage := &fakeReportStorage{}

	usecase := newReportUsecaseFixture(encounters, &fakeObservationClient{}, storage)
	response, err := usecase.ComposeReport(context.Background(), &requests.ComposeReportRequest{
		PatientUUID: "patient-1",
		ReportType:  constvars.ReportTypeGatePass,
	})

	assert.NoError(t, err, "without a disposal encounter the discharge one serves the gate pass")
	assert.Len(t, storage.objects, 1)
	assert.NotNil(t, response)
}

func TestComposePostMortemRequiresAutopsyEncounter(t *testing.T) {
	encounters := &fakeEncounterClient{encountersByType: map[string][]emr_dto.Encounter{}}
	usecase := newReportUsecaseFixture(encounters, &fakeObservationClient{}, &fakeReportStorage{})

	_, err := usecase.ComposeReport(context.Background(), &requests.ComposeReportRequest{
		PatientUUID: "patient-1",
		ReportType:  constvars.ReportTypePostMortem,
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "a post-mortem report without an autopsy encounter is a not-found")
}

func TestComposePostMortemReport(t *testing.T) {
	encounters := &fakeEncounterClient{encountersByType: map[string][]emr_dto.Encounter{
		"enc-type-autopsy": {
			{UUID: "enc-autopsy", EncounterDatetime: "2026-08-23T08:00:00.000+0300"},
		},
	}}
	observations := &fakeObservationClient{observations: []emr_dto.Obs{
		{Concept: emr_dto.ResourceRef{UUID: "concept-cause-of-death"}, Value: map[string]interface{}{"display": "Cardiac arrest"}},
		{Concept: emr_dto.ResourceRef{UUID: "concept-autopsy-findings"}, Value: "Left ventricular hypertrophy"},
	}}
	storage := &fakeReportStorage{}

	usecase := newReportUsecaseFixture(encounters, observations, storage)
	response, err := usecase.ComposeReport(context.Background(), &requests.ComposeReportRequest{
		PatientUUID: "patient-1",
		ReportType:  constvars.ReportTypePostMortem,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Cardiac arrest", response.Fields["Cause of death"], "coded values resolve to their display")
	assert.Equal(t, "Left ventricular hypertrophy", response.Fields["Autopsy findings"])
}

func TestObsValueString(t *testing.T) {
	assert.Equal(t, "", obsValueString(nil))
	assert.Equal(t, "plain", obsValueString("plain"))
	assert.Equal(t, "Coded Display", obsValueString(map[string]interface{}{"display": "Coded Display"}))
	assert.Equal(t, "42", obsValueString(42))
}
