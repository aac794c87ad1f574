package concepts

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
	conceptEmrClientInstance contracts.ConceptEmrClient
	onceConceptEmrClient     sync.Once
)

type conceptEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewConceptEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.ConceptEmrClient {
	onceConceptEmrClient.Do(func() {
		client := &conceptEmrClient{
			BaseUrl: baseUrl + constvars.EmrResourceConcept,
			Emr:     emrClient,
			Log:     logger,
		}
		conceptEmrClientInstance = client
	})
	return conceptEmrClientInstance
}

func (c *conceptEmrClient) SearchConcepts(ctx context.Context, query string) ([]emr_dto.Concept, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("conceptEmrClient.SearchConcepts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
	)

	params := url.Values{}
	params.Set("q", query)

	conceptList := new(emr_dto.ConceptList)
	requestUrl := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourceConcept, conceptList); err != nil {
		return nil, err
	}

	return conceptList.Results, nil
}
