package workflows

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/app/models"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/exceptions"
	"mortuary-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	stepCreateVisit     = "create-visit"
	stepCreateEncounter = "create-encounter"
	stepAssignBed       = "assign-bed"
	stepCreateBill      = "create-bill"
	stepCloseQueueEntry = "close-queue-entry"
	stepUnassignBed     = "unassign-bed"
	stepEndVisit        = "end-visit"
	stepRecordNextOfKin = "record-next-of-kin"
	stepAssignNewBed    = "assign-new-bed"
)

var (
	workflowUsecaseInstance WorkflowUsecase
	onceWorkflowUsecase     sync.Once
)

type workflowUsecase struct {
	VisitEmrClient     contracts.VisitEmrClient
	EncounterEmrClient contracts.EncounterEmrClient
	BedEmrClient       contracts.BedEmrClient
	QueueEmrClient     contracts.QueueEmrClient
	BillingEmrClient   contracts.BillingEmrClient
	PersonEmrClient    contracts.PersonEmrClient
	PatientEmrClient   contracts.PatientEmrClient
	ConceptEmrClient   contracts.ConceptEmrClient
	SagaRepository     contracts.SagaRepository
	Cache              contracts.TaggedCache
	EventPublisher     contracts.EventPublisher
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewWorkflowUsecase(
	visitEmrClient contracts.VisitEmrClient,
	encounterEmrClient contracts.EncounterEmrClient,
	bedEmrClient contracts.BedEmrClient,
	queueEmrClient contracts.QueueEmrClient,
	billingEmrClient contracts.BillingEmrClient,
	personEmrClient contracts.PersonEmrClient,
	patientEmrClient contracts.PatientEmrClient,
	conceptEmrClient contracts.ConceptEmrClient,
	sagaRepository contracts.SagaRepository,
	cache contracts.TaggedCache,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) WorkflowUsecase {
	onceWorkflowUsecase.Do(func() {
		workflowUsecaseInstance = &workflowUsecase{
			VisitEmrClient:     visitEmrClient,
			EncounterEmrClient: encounterEmrClient,
			BedEmrClient:       bedEmrClient,
			QueueEmrClient:     queueEmrClient,
			BillingEmrClient:   billingEmrClient,
			PersonEmrClient:    personEmrClient,
			PatientEmrClient:   patientEmrClient,
			ConceptEmrClient:   conceptEmrClient,
			SagaRepository:     sagaRepository,
			Cache:              cache,
			EventPublisher:     eventPublisher,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return workflowUsecaseInstance
}

func (uc *workflowUsecase) AdmitPatient(ctx context.Context, request *requests.AdmitPatientRequest) (*responses.WorkflowResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workflowUsecase.AdmitPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientUUID),
		zap.Int(constvars.LoggingBedIDKey, request.BedID),
	)

	now := utils.FormatEmrDatetime(time.Now())
	var visitUUID, encounterUUID, bedUUID, billUUID string

	steps := []sagaStep{
		{
			Name: stepCreateVisit,
			Execute: func(ctx context.Context) (string, error) {
				visit, err := uc.VisitEmrClient.CreateVisit(ctx, &emr_dto.CreateVisitRequest{
					Patient:       request.PatientUUID,
					VisitType:     request.VisitTypeUUID,
					Location:      uc.InternalConfig.Mortuary.LocationUUID,
					StartDatetime: now,
				})
				if err != nil {
					return "", err
				}
				visitUUID = visit.UUID
				return visit.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				_, err := uc.VisitEmrClient.EndVisit(ctx, visitUUID, utils.FormatEmrDatetime(time.Now()))
				return err
			},
		},
		{
			Name: stepCreateEncounter,
			Execute: func(ctx context.Context) (string, error) {
				encounter, err := uc.EncounterEmrClient.CreateEncounter(ctx, &emr_dto.CreateEncounterRequest{
					EncounterDatetime: now,
					EncounterType:     uc.InternalConfig.Mortuary.AdmissionEncounterType,
					Patient:           request.PatientUUID,
					Location:          uc.InternalConfig.Mortuary.LocationUUID,
					Visit:             visitUUID,
					Obs:               obsFromInputs(request.Observations, now),
				})
				if err != nil {
					return "", err
				}
				encounterUUID = encounter.UUID
				return encounter.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.EncounterEmrClient.VoidEncounter(ctx, encounterUUID, "admission rolled back")
			},
		},
		{
			Name: stepAssignBed,
			Execute: func(ctx context.Context) (string, error) {
				assignment, err := uc.BedEmrClient.AssignBed(ctx, request.BedID, &emr_dto.AssignBedRequest{
					PatientUUID:   request.PatientUUID,
					EncounterUUID: encounterUUID,
				})
				if err != nil {
					return "", err
				}
				bedUUID = assignment.Bed.UUID
				return assignment.Bed.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.BedEmrClient.UnassignBed(ctx, request.PatientUUID, encounterUUID)
			},
		},
	}

	if len(request.LineItems) > 0 {
		steps = append(steps, sagaStep{
			Name: stepCreateBill,
			Execute: func(ctx context.Context) (string, error) {
				bill, err := uc.BillingEmrClient.CreateBill(ctx, buildCreateBillRequest(request.PatientUUID, request.LineItems))
				if err != nil {
					return "", err
				}
				billUUID = bill.UUID
				return bill.UUID, nil
			},
			// The billing module exposes no void endpoint, so a created
			// bill survives a rollback and is settled manually.
			Compensate: nil,
		})
	}

	if request.QueueEntryUUID != "" {
		steps = append(steps, sagaStep{
			Name: stepCloseQueueEntry,
			Execute: func(ctx context.Context) (string, error) {
				entry, err := uc.QueueEmrClient.CloseEntry(ctx, request.QueueEntryUUID, utils.FormatEmrDatetime(time.Now()))
				if err != nil {
					return "", err
				}
				return entry.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				_, err := uc.QueueEmrClient.CreateEntry(ctx, &emr_dto.CreateQueueEntryRequest{
					Patient:   request.PatientUUID,
					StartedAt: utils.FormatEmrDatetime(time.Now()),
				})
				return err
			},
		})
	}

	saga, err := uc.runSaga(ctx, constvars.WorkflowAdmit, request.PatientUUID, steps)
	if err != nil {
		return buildWorkflowResult(saga), exceptions.ErrWorkflowFailed(err, saga.ID)
	}

	uc.invalidate(ctx, constvars.CacheTagBeds, constvars.CacheTagVisits, constvars.CacheTagQueue, constvars.CacheTagBills)
	details := map[string]string{
		"bed_id":         strconv.Itoa(request.BedID),
		"bed_uuid":       bedUUID,
		"visit_uuid":     visitUUID,
		"encounter_uuid": encounterUUID,
	}
	if billUUID != "" {
		details["bill_uuid"] = billUUID
	}
	uc.publishEvent(ctx, saga, details)
	return buildWorkflowResult(saga), nil
}

func (uc *workflowUsecase) DischargePatient(ctx context.Context, request *requests.DischargePatientRequest) (*responses.WorkflowResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workflowUsecase.DischargePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientUUID),
	)

	if err := uc.assertNoPendingBills(ctx, request.PatientUUID); err != nil {
		return nil, err
	}

	now := utils.FormatEmrDatetime(time.Now())
	var encounterUUID string

	steps := []sagaStep{
		{
			Name: stepCreateEncounter,
			Execute: func(ctx context.Context) (string, error) {
				encounter, err := uc.EncounterEmrClient.CreateEncounter(ctx, &emr_dto.CreateEncounterRequest{
					EncounterDatetime: now,
					EncounterType:     uc.InternalConfig.Mortuary.DischargeEncounterType,
					Patient:           request.PatientUUID,
					Location:          uc.InternalConfig.Mortuary.LocationUUID,
					Visit:             request.VisitUUID,
					Obs:               obsFromInputs(request.Observations, now),
				})
				if err != nil {
					return "", err
				}
				encounterUUID = encounter.UUID
				return encounter.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.EncounterEmrClient.VoidEncounter(ctx, encounterUUID, "discharge rolled back")
			},
		},
		{
			Name: stepUnassignBed,
			Execute: func(ctx context.Context) (string, error) {
				err := uc.BedEmrClient.UnassignBed(ctx, request.PatientUUID, encounterUUID)
				return "", err
			},
			Compensate: func(ctx context.Context) error {
				_, err := uc.BedEmrClient.AssignBed(ctx, request.BedID, &emr_dto.AssignBedRequest{
					PatientUUID:   request.PatientUUID,
					EncounterUUID: encounterUUID,
				})
				return err
			},
		},
		{
			Name: stepEndVisit,
			Execute: func(ctx context.Context) (string, error) {
				visit, err := uc.VisitEmrClient.EndVisit(ctx, request.VisitUUID, utils.FormatEmrDatetime(time.Now()))
				if err != nil {
					return "", err
				}
				return visit.UUID, nil
			},
			// The EMR cannot reopen a closed visit.
			Compensate: nil,
		},
	}

	if request.QueueEntryUUID != "" {
		steps = append(steps, uc.closeQueueEntryStep(request.PatientUUID, request.QueueEntryUUID))
	}

	saga, err := uc.runSaga(ctx, constvars.WorkflowDischarge, request.PatientUUID, steps)
	if err != nil {
		return buildWorkflowResult(saga), exceptions.ErrWorkflowFailed(err, saga.ID)
	}

	uc.invalidate(ctx, constvars.CacheTagBeds, constvars.CacheTagVisits, constvars.CacheTagQueue, constvars.CacheTagEncounters)
	uc.publishEvent(ctx, saga, map[string]string{
		"visit_uuid":     request.VisitUUID,
		"encounter_uuid": encounterUUID,
	})
	return buildWorkflowResult(saga), nil
}

func (uc *workflowUsecase) DisposePatient(ctx context.Context, request *requests.DisposePatientRequest) (*responses.WorkflowResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workflowUsecase.DisposePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientUUID),
		zap.String("disposal_method", request.DisposalMethod),
	)

	if err := uc.assertNoPendingBills(ctx, request.PatientUUID); err != nil {
		return nil, err
	}

	patient, err := uc.PatientEmrClient.FindDeceasedPatientByID(ctx, request.PatientUUID)
	if err != nil {
		return nil, err
	}

	now := utils.FormatEmrDatetime(time.Now())
	var encounterUUID string

	steps := []sagaStep{}
	if request.NextOfKinName != "" || request.NextOfKinPhone != "" || request.CourtOrderNumber != "" {
		steps = append(steps, sagaStep{
			Name: stepRecordNextOfKin,
			Execute: func(ctx context.Context) (string, error) {
				attributes := map[string]string{
					constvars.PersonAttributeNextOfKinName:    request.NextOfKinName,
					constvars.PersonAttributeNextOfKinPhone:   request.NextOfKinPhone,
					constvars.PersonAttributeCourtOrderNumber: request.CourtOrderNumber,
				}
				for attributeType, value := range attributes {
					if value == "" {
						continue
					}
					_, err := uc.PersonEmrClient.CreatePersonAttribute(ctx, patient.Person.UUID, &emr_dto.CreatePersonAttributeRequest{
						AttributeType: attributeType,
						Value:         value,
					})
					if err != nil {
						return "", err
					}
				}
				return patient.Person.UUID, nil
			},
			// Person attributes are audit data and stay on rollback.
			Compensate: nil,
		})
	}

	steps = append(steps,
		sagaStep{
			Name: stepCreateEncounter,
			Execute: func(ctx context.Context) (string, error) {
				encounter, err := uc.EncounterEmrClient.CreateEncounter(ctx, &emr_dto.CreateEncounterRequest{
					EncounterDatetime: now,
					EncounterType:     uc.InternalConfig.Mortuary.DisposalEncounterType,
					Patient:           request.PatientUUID,
					Location:          uc.InternalConfig.Mortuary.LocationUUID,
					Visit:             request.VisitUUID,
					Obs:               obsFromInputs(request.Observations, now),
				})
				if err != nil {
					return "", err
				}
				encounterUUID = encounter.UUID
				return encounter.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.EncounterEmrClient.VoidEncounter(ctx, encounterUUID, "disposal rolled back")
			},
		},
		sagaStep{
			Name: stepUnassignBed,
			Execute: func(ctx context.Context) (string, error) {
				err := uc.BedEmrClient.UnassignBed(ctx, request.PatientUUID, encounterUUID)
				return "", err
			},
			Compensate: func(ctx context.Context) error {
				_, err := uc.BedEmrClient.AssignBed(ctx, request.BedID, &emr_dto.AssignBedRequest{
					PatientUUID:   request.PatientUUID,
					EncounterUUID: encounterUUID,
				})
				return err
			},
		},
		sagaStep{
			Name: stepEndVisit,
			Execute: func(ctx context.Context) (string, error) {
				visit, err := uc.VisitEmrClient.EndVisit(ctx, request.VisitUUID, utils.FormatEmrDatetime(time.Now()))
				if err != nil {
					return "", err
				}
				return visit.UUID, nil
			},
			Compensate: nil,
		},
	)

	if request.QueueEntryUUID != "" {
		steps = append(steps, uc.closeQueueEntryStep(request.PatientUUID, request.QueueEntryUUID))
	}

	saga, err := uc.runSaga(ctx, constvars.WorkflowDispose, request.PatientUUID, steps)
	if err != nil {
		return buildWorkflowResult(saga), exceptions.ErrWorkflowFailed(err, saga.ID)
	}

	uc.invalidate(ctx, constvars.CacheTagBeds, constvars.CacheTagVisits, constvars.CacheTagQueue, constvars.CacheTagEncounters)
	uc.publishEvent(ctx, saga, map[string]string{
		"disposal_method": request.DisposalMethod,
		"visit_uuid":      request.VisitUUID,
		"encounter_uuid":  encounterUUID,
	})
	return buildWorkflowResult(saga), nil
}

func (uc *workflowUsecase) SwapCompartment(ctx context.Context, request *requests.SwapCompartmentRequest) (*responses.WorkflowResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("workflowUsecase.SwapCompartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientUUID),
		zap.Int("current_bed_id", request.CurrentBedID),
		zap.Int("new_bed_id", request.NewBedID),
	)

	now := utils.FormatEmrDatetime(time.Now())
	var encounterUUID string

	steps := []sagaStep{
		{
			Name: stepCreateEncounter,
			Execute: func(ctx context.Context) (string, error) {
				encounter, err := uc.EncounterEmrClient.CreateEncounter(ctx, &emr_dto.CreateEncounterRequest{
					EncounterDatetime: now,
					EncounterType:     uc.InternalConfig.Mortuary.BedAssignmentEncounterType,
					Patient:           request.PatientUUID,
					Location:          uc.InternalConfig.Mortuary.LocationUUID,
				})
				if err != nil {
					return "", err
				}
				encounterUUID = encounter.UUID
				return encounter.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.EncounterEmrClient.VoidEncounter(ctx, encounterUUID, "compartment swap rolled back")
			},
		},
		{
			Name: stepUnassignBed,
			Execute: func(ctx context.Context) (string, error) {
				err := uc.BedEmrClient.UnassignBed(ctx, request.PatientUUID, encounterUUID)
				return "", err
			},
			Compensate: func(ctx context.Context) error {
				_, err := uc.BedEmrClient.AssignBed(ctx, request.CurrentBedID, &emr_dto.AssignBedRequest{
					PatientUUID:   request.PatientUUID,
					EncounterUUID: encounterUUID,
				})
				return err
			},
		},
	}

	if request.NewBedID > 0 {
		steps = append(steps, sagaStep{
			Name: stepAssignNewBed,
			Execute: func(ctx context.Context) (string, error) {
				assignment, err := uc.BedEmrClient.AssignBed(ctx, request.NewBedID, &emr_dto.AssignBedRequest{
					PatientUUID:   request.PatientUUID,
					EncounterUUID: encounterUUID,
				})
				if err != nil {
					return "", err
				}
				return assignment.Bed.UUID, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.BedEmrClient.UnassignBed(ctx, request.PatientUUID, encounterUUID)
			},
		})
	}

	saga, err := uc.runSaga(ctx, constvars.WorkflowSwap, request.PatientUUID, steps)
	if err != nil {
		return buildWorkflowResult(saga), exceptions.ErrWorkflowFailed(err, saga.ID)
	}

	uc.invalidate(ctx, constvars.CacheTagBeds)
	uc.publishEvent(ctx, saga, map[string]string{
		"current_bed_id": strconv.Itoa(request.CurrentBedID),
		"new_bed_id":     strconv.Itoa(request.NewBedID),
	})
	return buildWorkflowResult(saga), nil
}

func (uc *workflowUsecase) GetSaga(ctx context.Context, sagaID string) (*responses.WorkflowResult, error) {
	saga, err := uc.SagaRepository.FindSagaByID(ctx, sagaID)
	if err != nil {
		return nil, err
	}
	return buildWorkflowResult(saga), nil
}

// CheckPendingBills sums the balance of every non-voided pending bill. Any
// outstanding balance blocks release workflows.
func (uc *workflowUsecase) CheckPendingBills(ctx context.Context, patientUUID string) (*responses.PendingBillCheck, error) {
	bills, err := uc.BillingEmrClient.FindBillsByPatient(ctx, patientUUID)
	if err != nil {
		return nil, err
	}

	check := &responses.PendingBillCheck{Bills: []responses.PatientBillSummary{}}
	for _, bill := range bills {
		summary := responses.PatientBillSummary{
			BillUUID: bill.UUID,
			Status:   bill.Status,
			Voided:   bill.Voided,
			Total:    bill.Total,
			Balance:  bill.Balance,
		}
		check.Bills = append(check.Bills, summary)

		if bill.Voided || bill.Status != constvars.BillStatusPending {
			continue
		}
		if bill.Balance > 0 {
			check.Blocked = true
			check.Outstanding += bill.Balance
		}
	}
	return check, nil
}

func (uc *workflowUsecase) ListBillableServices(ctx context.Context) ([]responses.BillableServiceItem, error) {
	services, err := uc.BillingEmrClient.ListBillableServices(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]responses.BillableServiceItem, 0, len(services))
	for _, service := range services {
		items = append(items, responses.BillableServiceItem{
			UUID:      service.UUID,
			Name:      service.Name,
			ShortName: service.ShortName,
			Price:     service.Price,
		})
	}
	return items, nil
}

func (uc *workflowUsecase) SearchConcepts(ctx context.Context, query string) ([]responses.ConceptItem, error) {
	concepts, err := uc.ConceptEmrClient.SearchConcepts(ctx, query)
	if err != nil {
		return nil, err
	}

	items := make([]responses.ConceptItem, 0, len(concepts))
	for _, concept := range concepts {
		items = append(items, responses.ConceptItem{
			UUID:    concept.UUID,
			Display: concept.Display,
		})
	}
	return items, nil
}

func (uc *workflowUsecase) assertNoPendingBills(ctx context.Context, patientUUID string) error {
	check, err := uc.CheckPendingBills(ctx, patientUUID)
	if err != nil {
		return err
	}
	if check.Blocked {
		return exceptions.ErrPendingBills(check.Outstanding)
	}
	return nil
}

func (uc *workflowUsecase) closeQueueEntryStep(patientUUID, queueEntryUUID string) sagaStep {
	return sagaStep{
		Name: stepCloseQueueEntry,
		Execute: func(ctx context.Context) (string, error) {
			entry, err := uc.QueueEmrClient.CloseEntry(ctx, queueEntryUUID, utils.FormatEmrDatetime(time.Now()))
			if err != nil {
				return "", err
			}
			return entry.UUID, nil
		},
		Compensate: func(ctx context.Context) error {
			_, err := uc.QueueEmrClient.CreateEntry(ctx, &emr_dto.CreateQueueEntryRequest{
				Patient:   patientUUID,
				StartedAt: utils.FormatEmrDatetime(time.Now()),
			})
			return err
		},
	}
}

func (uc *workflowUsecase) invalidate(ctx context.Context, tags ...string) {
	if err := uc.Cache.InvalidateTags(ctx, tags...); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("workflowUsecase.invalidate cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings("tags", tags),
			zap.Error(err),
		)
	}
}

func (uc *workflowUsecase) publishEvent(ctx context.Context, saga *models.Saga, details map[string]string) {
	event := &models.MortuaryEvent{
		EventID:      utils.GenerateRequestID(),
		Type:         fmt.Sprintf("mortuary.%s", saga.Workflow),
		SagaID:       saga.ID,
		PatientUUID:  saga.PatientUUID,
		LocationUUID: saga.LocationID,
		OccurredAt:   time.Now(),
		Details:      details,
	}
	if err := uc.EventPublisher.PublishMortuaryEvent(ctx, event); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("workflowUsecase.publishEvent publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSagaIDKey, saga.ID),
			zap.Error(err),
		)
	}
}

func obsFromInputs(observations []requests.ObservationInput, obsDatetime string) []emr_dto.CreateObsRequest {
	if len(observations) == 0 {
		return nil
	}
	obs := make([]emr_dto.CreateObsRequest, 0, len(observations))
	for _, observation := range observations {
		obs = append(obs, emr_dto.CreateObsRequest{
			Concept:     observation.ConceptUUID,
			Value:       observation.Value,
			ObsDatetime: obsDatetime,
		})
	}
	return obs
}

func buildCreateBillRequest(patientUUID string, lineItems []requests.BillLineItemInput) *emr_dto.CreateBillRequest {
	items := make([]emr_dto.CreateBillLineItem, 0, len(lineItems))
	for _, item := range lineItems {
		items = append(items, emr_dto.CreateBillLineItem{
			BillableService: item.BillableServiceUUID,
			Quantity:        item.Quantity,
			Price:           item.Price,
			PaymentStatus:   constvars.BillStatusPending,
		})
	}
	return &emr_dto.CreateBillRequest{
		Patient:   patientUUID,
		Status:    constvars.BillStatusPending,
		LineItems: items,
	}
}

func buildWorkflowResult(saga *models.Saga) *responses.WorkflowResult {
	if saga == nil {
		return nil
	}

	result := &responses.WorkflowResult{
		SagaID:      saga.ID,
		Workflow:    saga.Workflow,
		Status:      saga.Status,
		PatientUUID: saga.PatientUUID,
		Steps:       []responses.SagaStepResult{},
	}
	for _, step := range saga.Steps {
		result.Steps = append(result.Steps, responses.SagaStepResult{
			Name:       step.Name,
			Status:     step.Status,
			ResourceID: step.ResourceID,
			Error:      step.Error,
		})

		if step.Status != constvars.SagaStepStatusDone {
			continue
		}
		switch step.Name {
		case stepCreateVisit:
			result.VisitUUID = step.ResourceID
		case stepCreateEncounter:
			result.EncounterUUID = step.ResourceID
		case stepCreateBill:
			result.BillUUID = step.ResourceID
		case stepAssignBed, stepAssignNewBed:
			result.BedUUID = step.ResourceID
		}
	}
	return result
}
