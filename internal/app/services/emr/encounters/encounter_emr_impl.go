package encounters

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/app/services/emr/emrhttp"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/emr_dto"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	encounterEmrClientInstance contracts.EncounterEmrClient
	onceEncounterEmrClient     sync.Once
)

type encounterEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewEncounterEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.EncounterEmrClient {
	onceEncounterEmrClient.Do(func() {
		client := &encounterEmrClient{
			BaseUrl: baseUrl + constvars.EmrResourceEncounter,
			Emr:     emrClient,
			Log:     logger,
		}
		encounterEmrClientInstance = client
	})
	return encounterEmrClientInstance
}

func (c *encounterEmrClient) CreateEncounter(ctx context.Context, request *emr_dto.CreateEncounterRequest) (*emr_dto.Encounter, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("encounterEmrClient.CreateEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.Patient),
		zap.String("encounter_type", request.EncounterType),
	)

	encounter := new(emr_dto.Encounter)
	if err := c.Emr.Post(ctx, c.BaseUrl, constvars.EmrResourceEncounter, request, encounter); err != nil {
		return nil, err
	}

	c.Log.Info("encounterEmrClient.CreateEncounter succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEncounterIDKey, encounter.UUID),
	)
	return encounter, nil
}

func (c *encounterEmrClient) VoidEncounter(ctx context.Context, encounterUUID, reason string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("encounterEmrClient.VoidEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEncounterIDKey, encounterUUID),
	)

	requestUrl := fmt.Sprintf("%s/%s?reason=%s", c.BaseUrl, encounterUUID, url.QueryEscape(reason))
	return c.Emr.Delete(ctx, requestUrl, constvars.EmrResourceEncounter)
}

func (c *encounterEmrClient) FindEncountersByPatientAndType(ctx context.Context, patientUUID, encounterTypeUUID string) ([]emr_dto.Encounter, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("encounterEmrClient.FindEncountersByPatientAndType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientUUID),
		zap.String("encounter_type", encounterTypeUUID),
	)

	params := url.Values{}
	params.Set("patient", patientUUID)
	params.Set("encounterType", encounterTypeUUID)
	params.Set("v", "full")

	encounterList := new(emr_dto.EncounterList)
	requestUrl := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourceEncounter, encounterList); err != nil {
		return nil, err
	}

	return encounterList.Results, nil
}
