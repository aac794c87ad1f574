package visits

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
	visitEmrClientInstance contracts.VisitEmrClient
	onceVisitEmrClient     sync.Once
)

type visitEmrClient struct {
	BaseUrl      string
	LocationUUID string
	Emr          *emrhttp.Client
	Log          *zap.Logger
}

func NewVisitEmrClient(baseUrl, locationUUID string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.VisitEmrClient {
	onceVisitEmrClient.Do(func() {
		client := &visitEmrClient{
			BaseUrl:      baseUrl + constvars.EmrResourceVisit,
			LocationUUID: locationUUID,
			Emr:          emrClient,
			Log:          logger,
		}
		visitEmrClientInstance = client
	})
	return visitEmrClientInstance
}

// FindActiveVisits pulls every open visit at the mortuary location in a single
// query and filters to the requested patients, instead of issuing one visit
// lookup per patient.
func (c *visitEmrClient) FindActiveVisits(ctx context.Context, patientUUIDs []string) ([]emr_dto.Visit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("visitEmrClient.FindActiveVisits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("patient_count", len(patientUUIDs)),
	)

	params := url.Values{}
	params.Set("location", c.LocationUUID)
	params.Set("includeInactive", "false")
	params.Set("v", constvars.EmrProjectionVisit)

	visitList := new(emr_dto.VisitList)
	requestUrl := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourceVisit, visitList); err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(patientUUIDs))
	for _, patientUUID := range patientUUIDs {
		wanted[patientUUID] = true
	}

	visits := make([]emr_dto.Visit, 0, len(patientUUIDs))
	for _, visit := range visitList.Results {
		if wanted[visit.Patient.UUID] {
			visits = append(visits, visit)
		}
	}

	c.Log.Info("visitEmrClient.FindActiveVisits succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("visit_count", len(visits)),
	)
	return visits, nil
}

func (c *visitEmrClient) CreateVisit(ctx context.Context, request *emr_dto.CreateVisitRequest) (*emr_dto.Visit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("visitEmrClient.CreateVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.Patient),
	)

	visit := new(emr_dto.Visit)
	if err := c.Emr.Post(ctx, c.BaseUrl, constvars.EmrResourceVisit, request, visit); err != nil {
		return nil, err
	}

	c.Log.Info("visitEmrClient.CreateVisit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visit.UUID),
	)
	return visit, nil
}

func (c *visitEmrClient) EndVisit(ctx context.Context, visitUUID, stopDatetime string) (*emr_dto.Visit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("visitEmrClient.EndVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitUUID),
	)

	request := &emr_dto.UpdateVisitRequest{StopDatetime: stopDatetime}
	visit := new(emr_dto.Visit)
	requestUrl := fmt.Sprintf("%s/%s", c.BaseUrl, visitUUID)
	if err := c.Emr.Post(ctx, requestUrl, constvars.EmrResourceVisit, request, visit); err != nil {
		return nil, err
	}
	return visit, nil
}
