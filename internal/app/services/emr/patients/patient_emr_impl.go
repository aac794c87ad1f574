package patients

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/app/services/emr/emrhttp"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/emr_dto"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

var (
	patientEmrClientInstance contracts.PatientEmrClient
	oncePatientEmrClient     sync.Once
)

type patientEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewPatientEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.PatientEmrClient {
	oncePatientEmrClient.Do(func() {
		client := &patientEmrClient{
			BaseUrl: baseUrl + constvars.EmrResourcePatient,
			Emr:     emrClient,
			Log:     logger,
		}
		patientEmrClientInstance = client
	})
	return patientEmrClientInstance
}

func (c *patientEmrClient) FindDeceasedPatientByID(ctx context.Context, patientUUID string) (*emr_dto.DeceasedPatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientEmrClient.FindDeceasedPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientUUID),
	)

	patient := new(emr_dto.DeceasedPatient)
	requestUrl := fmt.Sprintf("%s/%s?v=%s", c.BaseUrl, patientUUID, url.QueryEscape(constvars.EmrProjectionDeceasedPatient))
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourcePatient, patient); err != nil {
		return nil, err
	}

	c.Log.Info("patientEmrClient.FindDeceasedPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.UUID),
	)
	return patient, nil
}

func (c *patientEmrClient) SearchDeceasedPatients(ctx context.Context, query string, limit, startIndex int) (*emr_dto.DeceasedPatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientEmrClient.SearchDeceasedPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
	)

	params := url.Values{}
	params.Set("q", query)
	params.Set("dead", "true")
	params.Set("v", constvars.EmrProjectionDeceasedPatient)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("startIndex", strconv.Itoa(startIndex))

	patientList := new(emr_dto.DeceasedPatientList)
	requestUrl := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourcePatient, patientList); err != nil {
		return nil, err
	}

	return patientList, nil
}
