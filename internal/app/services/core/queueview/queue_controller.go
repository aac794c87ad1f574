package queueview

import (
	"context"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/exceptions"
	"mortuary-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QueueController struct {
	Log          *zap.Logger
	QueueUsecase QueueUsecase
}

func NewQueueController(logger *zap.Logger, queueUsecase QueueUsecase) *QueueController {
	return &QueueController{
		Log:          logger,
		QueueUsecase: queueUsecase,
	}
}

func (ctrl *QueueController) ListQueueEntries(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patients, total, err := ctrl.QueueUsecase.ListQueueEntries(ctx, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetQueueEntriesSuccessMessage, paginationResponse, patients)
}

func (ctrl *QueueController) ReleaseQueueEntry(w http.ResponseWriter, r *http.Request) {
	queueEntryUUID := chi.URLParam(r, constvars.URLParamQueueID)

	request := new(requests.ReleaseQueueEntryRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.QueueUsecase.ReleaseQueueEntry(ctx, queueEntryUUID, request); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReleaseQueueEntrySuccessMessage, nil)
}
