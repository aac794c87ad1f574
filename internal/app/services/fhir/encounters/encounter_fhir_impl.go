package encounters

import (
	"context"
	"fmt"
	"io"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/exceptions"
	"mortuary-service/internal/pkg/fhir_dto"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	encounterFhirClientInstance contracts.EncounterFhirClient
	onceEncounterFhirClient     sync.Once
)

type encounterFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewEncounterFhirClient(baseUrl string, logger *zap.Logger) contracts.EncounterFhirClient {
	onceEncounterFhirClient.Do(func() {
		client := &encounterFhirClient{
			BaseUrl: baseUrl + "/" + constvars.ResourceEncounter,
			Log:     logger,
		}
		encounterFhirClientInstance = client
	})
	return encounterFhirClientInstance
}

// SearchEncounters pages through the FHIR endpoint by _count and
// _getpagesoffset and returns the decoded page plus the bundle total.
func (c *encounterFhirClient) SearchEncounters(ctx context.Context, encounterTypeUUID, locationUUID string, count, offset int) ([]fhir_dto.Encounter, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("encounterFhirClient.SearchEncounters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("encounter_type", encounterTypeUUID),
		zap.String(constvars.LoggingLocationIDKey, locationUUID),
	)

	params := url.Values{}
	params.Set(constvars.FhirParamEncounterType, encounterTypeUUID)
	if locationUUID != "" {
		params.Set(constvars.FhirParamLocation, locationUUID)
	}
	params.Set(constvars.FhirParamCount, strconv.Itoa(count))
	params.Set(constvars.FhirParamPagesOffset, strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode()), nil)
	if err != nil {
		c.Log.Error("encounterFhirClient.SearchEncounters error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("encounterFhirClient.SearchEncounters error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, 0, exceptions.ErrFhirSearchResource(readErr, constvars.ResourceEncounter)
		}

		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			fhirErrorIssue := fmt.Errorf(outcome.Issue[0].Diagnostics)
			c.Log.Error("encounterFhirClient.SearchEncounters FHIR error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(fhirErrorIssue),
			)
			return nil, 0, exceptions.ErrFhirSearchResource(fhirErrorIssue, constvars.ResourceEncounter)
		}
		return nil, 0, exceptions.ErrFhirSearchResource(fmt.Errorf("fhir responded with status %d", resp.StatusCode), constvars.ResourceEncounter)
	}

	bundle := new(fhir_dto.FHIRBundle)
	if err := json.NewDecoder(resp.Body).Decode(bundle); err != nil {
		c.Log.Error("encounterFhirClient.SearchEncounters error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrDecodeResponse(err, constvars.ResourceEncounter)
	}

	encounters := make([]fhir_dto.Encounter, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var encounter fhir_dto.Encounter
		if err := json.Unmarshal(entry.Resource, &encounter); err != nil {
			return nil, 0, exceptions.ErrDecodeResponse(err, constvars.ResourceEncounter)
		}
		if encounter.ResourceType != constvars.ResourceEncounter {
			continue
		}
		encounters = append(encounters, encounter)
	}

	c.Log.Info("encounterFhirClient.SearchEncounters succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("encounter_count", len(encounters)),
		zap.Int("bundle_total", bundle.Total),
	)
	return encounters, bundle.Total, nil
}
