package observations

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
	observationEmrClientInstance contracts.ObservationEmrClient
	onceObservationEmrClient     sync.Once
)

type observationEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewObservationEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.ObservationEmrClient {
	onceObservationEmrClient.Do(func() {
		client := &observationEmrClient{
			BaseUrl: baseUrl + constvars.EmrResourceObservation,
			Emr:     emrClient,
			Log:     logger,
		}
		observationEmrClientInstance = client
	})
	return observationEmrClientInstance
}

func (c *observationEmrClient) ListObsByEncounter(ctx context.Context, encounterUUID string) ([]emr_dto.Obs, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("observationEmrClient.ListObsByEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEncounterIDKey, encounterUUID),
	)

	params := url.Values{}
	params.Set("encounter", encounterUUID)
	params.Set("v", "custom:(uuid,concept:(uuid,display),value,obsDatetime)")

	obsList := new(emr_dto.ObsList)
	requestUrl := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourceObservation, obsList); err != nil {
		return nil, err
	}

	c.Log.Info("observationEmrClient.ListObsByEncounter succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("obs_count", len(obsList.Results)),
	)
	return obsList.Results, nil
}
