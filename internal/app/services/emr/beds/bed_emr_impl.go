package beds

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
	bedEmrClientInstance contracts.BedEmrClient
	onceBedEmrClient     sync.Once
)

type bedEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewBedEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.BedEmrClient {
	onceBedEmrClient.Do(func() {
		client := &bedEmrClient{
			BaseUrl: baseUrl,
			Emr:     emrClient,
			Log:     logger,
		}
		bedEmrClientInstance = client
	})
	return bedEmrClientInstance
}

func (c *bedEmrClient) AssignBed(ctx context.Context, bedID int, request *emr_dto.AssignBedRequest) (*emr_dto.BedAssignment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bedEmrClient.AssignBed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBedIDKey, bedID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientUUID),
	)

	assignment := new(emr_dto.BedAssignment)
	requestUrl := fmt.Sprintf("%s%s/%d", c.BaseUrl, constvars.EmrResourceBed, bedID)
	if err := c.Emr.Post(ctx, requestUrl, constvars.EmrResourceBed, request, assignment); err != nil {
		return nil, err
	}

	c.Log.Info("bedEmrClient.AssignBed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBedIDKey, bedID),
	)
	return assignment, nil
}

func (c *bedEmrClient) UnassignBed(ctx context.Context, patientUUID, encounterUUID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bedEmrClient.UnassignBed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientUUID),
	)

	params := url.Values{}
	params.Set("patient", patientUUID)
	if encounterUUID != "" {
		params.Set("encounter", encounterUUID)
	}

	requestUrl := fmt.Sprintf("%s%s?%s", c.BaseUrl, constvars.EmrResourceBedAssignment, params.Encode())
	return c.Emr.Delete(ctx, requestUrl, constvars.EmrResourceBedAssignment)
}
