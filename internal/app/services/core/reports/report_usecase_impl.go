package reports

import (
	"bytes"
	"context"
	"fmt"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/exceptions"
	"mortuary-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	reportUsecaseInstance ReportUsecase
	onceReportUsecase     sync.Once
)

type reportField struct {
	Label       string
	ConceptUUID string
}

type reportUsecase struct {
	PatientEmrClient     contracts.PatientEmrClient
	EncounterEmrClient   contracts.EncounterEmrClient
	ObservationEmrClient contracts.ObservationEmrClient
	ReportStorage        contracts.ReportStorage
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewReportUsecase(
	patientEmrClient contracts.PatientEmrClient,
	encounterEmrClient contracts.EncounterEmrClient,
	observationEmrClient contracts.ObservationEmrClient,
	reportStorage contracts.ReportStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ReportUsecase {
	onceReportUsecase.Do(func() {
		reportUsecaseInstance = &reportUsecase{
			PatientEmrClient:     patientEmrClient,
			EncounterEmrClient:   encounterEmrClient,
			ObservationEmrClient: observationEmrClient,
			ReportStorage:        reportStorage,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
	})
	return reportUsecaseInstance
}

func (uc *reportUsecase) ComposeReport(ctx context.Context, request *requests.ComposeReportRequest) (*responses.ReportResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.ComposeReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientUUID),
		zap.String(constvars.LoggingReportTypeKey, request.ReportType),
	)

	patient, err := uc.PatientEmrClient.FindDeceasedPatientByID(ctx, request.PatientUUID)
	if err != nil {
		return nil, err
	}

	encounter, title, fields, err := uc.resolveSource(ctx, request)
	if err != nil {
		return nil, err
	}

	observations, err := uc.ObservationEmrClient.ListObsByEncounter(ctx, encounter.UUID)
	if err != nil {
		return nil, err
	}

	// Observations are matched by concept id, never by display-name
	// substring, so renamed concepts keep resolving.
	obsByConcept := map[string]emr_dto.Obs{}
	for _, obs := range observations {
		obsByConcept[obs.Concept.UUID] = obs
	}

	composedAt := time.Now()
	rows := make([]reportRow, 0, len(fields))
	fieldValues := map[string]string{}
	for _, field := range fields {
		value := ""
		if obs, ok := obsByConcept[field.ConceptUUID]; ok {
			value = obsValueString(obs.Value)
		}
		rows = append(rows, reportRow{Label: field.Label, Value: value})
		fieldValues[field.Label] = value
	}

	var rendered bytes.Buffer
	err = reportTemplate.Execute(&rendered, reportTemplateData{
		Title:       title,
		PatientName: patient.Person.Display,
		PatientUUID: patient.UUID,
		DeathDate:   patient.Person.DeathDate,
		ComposedAt:  composedAt.Format(time.RFC1123),
		Rows:        rows,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf("reports/%s/%s-%d.html", request.PatientUUID, request.ReportType, composedAt.Unix())
	if _, err := uc.ReportStorage.UploadReport(ctx, objectName, rendered.Bytes(), constvars.MIMETextHTML); err != nil {
		return nil, err
	}

	uc.Log.Info("reportUsecase.ComposeReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, request.ReportType),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.ReportResponse{
		ReportType:  request.ReportType,
		PatientUUID: request.PatientUUID,
		ObjectName:  objectName,
		Fields:      fieldValues,
		ComposedAt:  utils.FormatEmrDatetime(composedAt),
	}, nil
}

// resolveSource picks the encounter a report draws its observations from.
// The gate pass reads the disposal encounter, falling back to the discharge
// one; the post-mortem report requires an autopsy encounter.
func (uc *reportUsecase) resolveSource(ctx context.Context, request *requests.ComposeReportRequest) (*emr_dto.Encounter, string, []reportField, error) {
	switch request.ReportType {
	case constvars.ReportTypeGatePass:
		encounter, err := uc.latestEncounter(ctx, request.PatientUUID, uc.InternalConfig.Mortuary.DisposalEncounterType)
		if err != nil {
			return nil, "", nil, err
		}
		if encounter == nil {
			encounter, err = uc.latestEncounter(ctx, request.PatientUUID, uc.InternalConfig.Mortuary.DischargeEncounterType)
			if err != nil {
				return nil, "", nil, err
			}
		}
		if encounter == nil {
			return nil, "", nil, exceptions.ErrPatientNotFound(fmt.Errorf("no release encounter for patient %s", request.PatientUUID))
		}
		fields := []reportField{
			{Label: "Released to", ConceptUUID: uc.InternalConfig.Reports.ConceptReleasedTo},
			{Label: "Burial permit number", ConceptUUID: uc.InternalConfig.Reports.ConceptBurialPermit},
			{Label: "Next of kin", ConceptUUID: uc.InternalConfig.Reports.ConceptNextOfKin},
		}
		return encounter, "Mortuary Gate Pass", fields, nil

	case constvars.ReportTypePostMortem:
		encounter, err := uc.latestEncounter(ctx, request.PatientUUID, uc.InternalConfig.Mortuary.AutopsyEncounterType)
		if err != nil {
			return nil, "", nil, err
		}
		if encounter == nil {
			return nil, "", nil, exceptions.ErrNoAutopsyEncounter(fmt.Errorf("no autopsy encounter for patient %s", request.PatientUUID))
		}
		fields := []reportField{
			{Label: "Autopsy findings", ConceptUUID: uc.InternalConfig.Reports.ConceptAutopsyFindings},
			{Label: "Cause of death", ConceptUUID: uc.InternalConfig.Reports.ConceptCauseOfDeath},
			{Label: "Pathologist notes", ConceptUUID: uc.InternalConfig.Reports.ConceptPathologistNotes},
		}
		return encounter, "Post-mortem Examination Report", fields, nil
	}
	return nil, "", nil, exceptions.ErrInputValidation(fmt.Errorf("unknown report type %s", request.ReportType))
}

// latestEncounter returns the newest non-voided encounter of the given type,
// or nil when none exists.
func (uc *reportUsecase) latestEncounter(ctx context.Context, patientUUID, encounterTypeUUID string) (*emr_dto.Encounter, error) {
	encounters, err := uc.EncounterEmrClient.FindEncountersByPatientAndType(ctx, patientUUID, encounterTypeUUID)
	if err != nil {
		return nil, err
	}

	var latest *emr_dto.Encounter
	var latestTime time.Time
	for index := range encounters {
		encounter := &encounters[index]
		if encounter.Voided {
			continue
		}
		parsed, ok := utils.ParseEmrDatetime(encounter.EncounterDatetime)
		if !ok {
			parsed = time.Time{}
		}
		if latest == nil || parsed.After(latestTime) {
			latest = encounter
			latestTime = parsed
		}
	}
	return latest, nil
}

// obsValueString flattens an observation value: coded answers arrive as
// objects with a display key, everything else is stringified as-is.
func obsValueString(value interface{}) string {
	if value == nil {
		return ""
	}
	if coded, ok := value.(map[string]interface{}); ok {
		if display, ok := coded["display"].(string); ok {
			return display
		}
	}
	return fmt.Sprintf("%v", value)
}
