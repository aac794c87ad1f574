package workflows

import (
	"context"
	"mortuary-service/internal/app/models"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// sagaStep is one forward action of a workflow run. Compensate undoes the
// action if a later step fails; a nil Compensate marks the action as not
// undoable and is recorded as such in the ledger.
type sagaStep struct {
	Name       string
	Execute    func(ctx context.Context) (string, error)
	Compensate func(ctx context.Context) error
}

// runSaga executes steps in order, persisting the ledger after every state
// change. On a step failure the already-executed steps are compensated in
// reverse order and the saga ends compensated, or failed when a compensation
// itself fails.
func (uc *workflowUsecase) runSaga(ctx context.Context, workflow, patientUUID string, steps []sagaStep) (*models.Saga, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	saga := &models.Saga{
		ID:          utils.GenerateSagaID(),
		Workflow:    workflow,
		PatientUUID: patientUUID,
		LocationID:  uc.InternalConfig.Mortuary.LocationUUID,
		Status:      constvars.SagaStatusRunning,
		Steps:       []models.SagaStep{},
		StartedAt:   time.Now(),
	}
	if err := uc.SagaRepository.InsertSaga(ctx, saga); err != nil {
		// No step ran yet; hand the unpersisted saga back so callers can
		// still report its id.
		saga.Status = constvars.SagaStatusFailed
		saga.FailureNote = err.Error()
		return saga, err
	}

	for index, step := range steps {
		uc.Log.Info("workflowUsecase.runSaga executing step",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSagaIDKey, saga.ID),
			zap.String(constvars.LoggingWorkflowKey, workflow),
			zap.String(constvars.LoggingStepKey, step.Name),
		)

		resourceID, err := step.Execute(ctx)
		if err != nil {
			saga.Steps = append(saga.Steps, models.SagaStep{
				Name:       step.Name,
				Status:     constvars.SagaStepStatusFailed,
				Error:      err.Error(),
				ExecutedAt: time.Now(),
			})
			uc.compensate(ctx, saga, steps[:index])
			uc.finishSaga(ctx, saga, err.Error())
			return saga, err
		}

		saga.Steps = append(saga.Steps, models.SagaStep{
			Name:       step.Name,
			Status:     constvars.SagaStepStatusDone,
			ResourceID: resourceID,
			ExecutedAt: time.Now(),
		})
		if err := uc.SagaRepository.UpdateSaga(ctx, saga); err != nil {
			uc.Log.Warn("workflowUsecase.runSaga ledger update failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSagaIDKey, saga.ID),
				zap.Error(err),
			)
		}
	}

	now := time.Now()
	saga.Status = constvars.SagaStatusCompleted
	saga.FinishedAt = &now
	if err := uc.SagaRepository.UpdateSaga(ctx, saga); err != nil {
		uc.Log.Warn("workflowUsecase.runSaga ledger update failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSagaIDKey, saga.ID),
			zap.Error(err),
		)
	}
	return saga, nil
}

// compensate walks the executed steps backwards. Compensation outcomes only
// amend the ledger; they never abort the walk.
func (uc *workflowUsecase) compensate(ctx context.Context, saga *models.Saga, executed []sagaStep) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	saga.Status = constvars.SagaStatusCompensated

	for index := len(executed) - 1; index >= 0; index-- {
		step := executed[index]
		ledgerStep := &saga.Steps[index]
		now := time.Now()

		if step.Compensate == nil {
			ledgerStep.Status = constvars.SagaStepStatusCompensationUnsupported
			ledgerStep.Compensated = &now
			continue
		}

		uc.Log.Info("workflowUsecase.compensate reverting step",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSagaIDKey, saga.ID),
			zap.String(constvars.LoggingStepKey, step.Name),
		)
		if err := step.Compensate(ctx); err != nil {
			ledgerStep.Status = constvars.SagaStepStatusCompensationFailed
			ledgerStep.Error = err.Error()
			ledgerStep.Compensated = &now
			saga.Status = constvars.SagaStatusFailed
			uc.Log.Error("workflowUsecase.compensate step compensation failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSagaIDKey, saga.ID),
				zap.String(constvars.LoggingStepKey, step.Name),
				zap.Error(err),
			)
			continue
		}
		ledgerStep.Status = constvars.SagaStepStatusCompensated
		ledgerStep.Compensated = &now
	}
}

func (uc *workflowUsecase) finishSaga(ctx context.Context, saga *models.Saga, failureNote string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := time.Now()
	saga.FinishedAt = &now
	saga.FailureNote = failureNote
	if err := uc.SagaRepository.UpdateSaga(ctx, saga); err != nil {
		uc.Log.Error("workflowUsecase.finishSaga ledger update failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSagaIDKey, saga.ID),
			zap.Error(err),
		)
	}
}
