package occupancy

import (
	"context"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
	"mortuary-service/internal/pkg/exceptions"
	"mortuary-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type listPatientsFunc func(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error)

type OccupancyController struct {
	Log              *zap.Logger
	OccupancyUsecase OccupancyUsecase
}

func NewOccupancyController(logger *zap.Logger, occupancyUsecase OccupancyUsecase) *OccupancyController {
	return &OccupancyController{
		Log:              logger,
		OccupancyUsecase: occupancyUsecase,
	}
}

func (ctrl *OccupancyController) GetBedLayout(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.OccupancyUsecase.GetBedLayout(ctx, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetBedLayoutSuccessMessage, paginationResponse, response)
}

func (ctrl *OccupancyController) ListAwaitingPatients(w http.ResponseWriter, r *http.Request) {
	ctrl.listPatients(w, r, constvars.GetAwaitingPatientsSuccessMessage, ctrl.OccupancyUsecase.ListAwaitingPatients)
}

func (ctrl *OccupancyController) ListAdmittedPatients(w http.ResponseWriter, r *http.Request) {
	ctrl.listPatients(w, r, constvars.GetAdmittedPatientsSuccessMessage, ctrl.OccupancyUsecase.ListAdmittedPatients)
}

func (ctrl *OccupancyController) ListDischargedPatients(w http.ResponseWriter, r *http.Request) {
	ctrl.listPatients(w, r, constvars.GetDischargedPatientsSuccessMessage, ctrl.OccupancyUsecase.ListDischargedPatients)
}

func (ctrl *OccupancyController) listPatients(w http.ResponseWriter, r *http.Request, successMessage string, list listPatientsFunc) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patients, total, err := list(ctx, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, successMessage, paginationResponse, patients)
}
