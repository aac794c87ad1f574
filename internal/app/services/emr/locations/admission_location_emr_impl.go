package locations

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/app/services/emr/emrhttp"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/emr_dto"
	"sync"

	"go.uber.org/zap"
)

var (
	admissionLocationEmrClientInstance contracts.AdmissionLocationEmrClient
	onceAdmissionLocationEmrClient     sync.Once
)

type admissionLocationEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewAdmissionLocationEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.AdmissionLocationEmrClient {
	onceAdmissionLocationEmrClient.Do(func() {
		client := &admissionLocationEmrClient{
			BaseUrl: baseUrl + constvars.EmrResourceAdmissionLoc,
			Emr:     emrClient,
			Log:     logger,
		}
		admissionLocationEmrClientInstance = client
	})
	return admissionLocationEmrClientInstance
}

func (c *admissionLocationEmrClient) GetAdmissionLocation(ctx context.Context, wardUUID string) (*emr_dto.AdmissionLocation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("admissionLocationEmrClient.GetAdmissionLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationIDKey, wardUUID),
	)

	admissionLocation := new(emr_dto.AdmissionLocation)
	url := fmt.Sprintf("%s/%s?v=full", c.BaseUrl, wardUUID)
	if err := c.Emr.Get(ctx, url, constvars.EmrResourceAdmissionLoc, admissionLocation); err != nil {
		return nil, err
	}

	c.Log.Info("admissionLocationEmrClient.GetAdmissionLocation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("total_beds", admissionLocation.TotalBeds),
		zap.Int("occupied_beds", admissionLocation.OccupiedBeds),
	)
	return admissionLocation, nil
}

func (c *admissionLocationEmrClient) ListAdmissionLocations(ctx context.Context) ([]emr_dto.AdmissionLocation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("admissionLocationEmrClient.ListAdmissionLocations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	admissionLocationList := new(emr_dto.AdmissionLocationList)
	url := fmt.Sprintf("%s?v=full", c.BaseUrl)
	if err := c.Emr.Get(ctx, url, constvars.EmrResourceAdmissionLoc, admissionLocationList); err != nil {
		return nil, err
	}

	return admissionLocationList.Results, nil
}
