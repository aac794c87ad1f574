package persons

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
	personEmrClientInstance contracts.PersonEmrClient
	oncePersonEmrClient     sync.Once
)

type personEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewPersonEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.PersonEmrClient {
	oncePersonEmrClient.Do(func() {
		client := &personEmrClient{
			BaseUrl: baseUrl + constvars.EmrResourcePerson,
			Emr:     emrClient,
			Log:     logger,
		}
		personEmrClientInstance = client
	})
	return personEmrClientInstance
}

func (c *personEmrClient) CreatePersonAttribute(ctx context.Context, personUUID string, request *emr_dto.CreatePersonAttributeRequest) (*emr_dto.PersonAttribute, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("personEmrClient.CreatePersonAttribute called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("person_id", personUUID),
	)

	attribute := new(emr_dto.PersonAttribute)
	requestUrl := fmt.Sprintf("%s/%s/attribute", c.BaseUrl, personUUID)
	if err := c.Emr.Post(ctx, requestUrl, constvars.EmrResourcePerson, request, attribute); err != nil {
		return nil, err
	}

	return attribute, nil
}
