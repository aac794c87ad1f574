package queue

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
	queueEmrClientInstance contracts.QueueEmrClient
	onceQueueEmrClient     sync.Once
)

type queueEmrClient struct {
	BaseUrl string
	Emr     *emrhttp.Client
	Log     *zap.Logger
}

func NewQueueEmrClient(baseUrl string, emrClient *emrhttp.Client, logger *zap.Logger) contracts.QueueEmrClient {
	onceQueueEmrClient.Do(func() {
		client := &queueEmrClient{
			BaseUrl: baseUrl + constvars.EmrResourceQueueEntry,
			Emr:     emrClient,
			Log:     logger,
		}
		queueEmrClientInstance = client
	})
	return queueEmrClientInstance
}

func (c *queueEmrClient) ListActiveEntries(ctx context.Context, locationUUID string) ([]emr_dto.QueueEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("queueEmrClient.ListActiveEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationIDKey, locationUUID),
	)

	params := url.Values{}
	params.Set("status", constvars.QueueEntryStatusActive)
	params.Set("location", locationUUID)
	params.Set("v", constvars.EmrProjectionQueueEntry)

	entryList := new(emr_dto.QueueEntryList)
	requestUrl := fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode())
	if err := c.Emr.Get(ctx, requestUrl, constvars.EmrResourceQueueEntry, entryList); err != nil {
		return nil, err
	}

	c.Log.Info("queueEmrClient.ListActiveEntries succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("entry_count", len(entryList.Results)),
	)
	return entryList.Results, nil
}

func (c *queueEmrClient) CreateEntry(ctx context.Context, request *emr_dto.CreateQueueEntryRequest) (*emr_dto.QueueEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("queueEmrClient.CreateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.Patient),
	)

	entry := new(emr_dto.QueueEntry)
	if err := c.Emr.Post(ctx, c.BaseUrl, constvars.EmrResourceQueueEntry, request, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *queueEmrClient) CloseEntry(ctx context.Context, entryUUID, endedAt string) (*emr_dto.QueueEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("queueEmrClient.CloseEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("queue_entry_id", entryUUID),
	)

	request := &emr_dto.CloseQueueEntryRequest{
		Status:  constvars.QueueEntryStatusEnded,
		EndedAt: endedAt,
	}
	entry := new(emr_dto.QueueEntry)
	requestUrl := fmt.Sprintf("%s/%s", c.BaseUrl, entryUUID)
	if err := c.Emr.Post(ctx, requestUrl, constvars.EmrResourceQueueEntry, request, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
