package queueview

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
	"mortuary-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	queueUsecaseInstance QueueUsecase
	onceQueueUsecase     sync.Once
)

type queueUsecase struct {
	QueueEmrClient contracts.QueueEmrClient
	Cache          contracts.TaggedCache
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewQueueUsecase(
	queueEmrClient contracts.QueueEmrClient,
	cache contracts.TaggedCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) QueueUsecase {
	onceQueueUsecase.Do(func() {
		queueUsecaseInstance = &queueUsecase{
			QueueEmrClient: queueEmrClient,
			Cache:          cache,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return queueUsecaseInstance
}

func (uc *queueUsecase) ListQueueEntries(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("queueUsecase.ListQueueEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cacheKey := fmt.Sprintf("queue:entries:%d:%d:%s", pagination.Page, pagination.PageSize, pagination.Search)
	var cached cachedQueuePage
	if found, err := uc.Cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return cached.Patients, cached.Total, nil
	}

	entries, err := uc.QueueEmrClient.ListActiveEntries(ctx, uc.InternalConfig.Mortuary.LocationUUID)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	patients := make([]responses.MortuaryPatient, 0, len(entries))
	for _, entry := range entries {
		patient := responses.MortuaryPatient{
			Stage:          constvars.StageAwaiting,
			PatientUUID:    entry.Patient.UUID,
			Name:           entry.Patient.Display,
			QueueEntryUUID: entry.UUID,
			QueuedAt:       entry.StartedAt,
			DaysInQueue:    utils.DaysInQueue(entry.StartedAt, now),
		}
		patient.DaysInMortuary = patient.DaysInQueue
		patient.SeverityTier = utils.SeverityTier(patient.DaysInQueue)
		patients = append(patients, patient)
	}

	patients = utils.FilterMortuaryPatients(patients, pagination.Search)
	total := len(patients)
	start, end := utils.PageBounds(total, pagination.Page, pagination.PageSize)
	page := patients[start:end]

	ttl := time.Duration(uc.InternalConfig.Mortuary.CacheTTLSeconds) * time.Second
	if err := uc.Cache.SetJSON(ctx, cacheKey, &cachedQueuePage{Patients: page, Total: total}, ttl, constvars.CacheTagQueue); err != nil {
		uc.Log.Warn("queueUsecase.ListQueueEntries cache store failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}
	return page, total, nil
}

func (uc *queueUsecase) ReleaseQueueEntry(ctx context.Context, queueEntryUUID string, request *requests.ReleaseQueueEntryRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("queueUsecase.ReleaseQueueEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("queue_entry_id", queueEntryUUID),
	)

	endedAt := request.EndedAt
	if endedAt == "" {
		endedAt = utils.FormatEmrDatetime(time.Now())
	}

	if _, err := uc.QueueEmrClient.CloseEntry(ctx, queueEntryUUID, endedAt); err != nil {
		return err
	}

	if err := uc.Cache.InvalidateTags(ctx, constvars.CacheTagQueue); err != nil {
		uc.Log.Warn("queueUsecase.ReleaseQueueEntry cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return nil
}

type cachedQueuePage struct {
	Patients []responses.MortuaryPatient `json:"patients"`
	Total    int                         `json:"total"`
}
