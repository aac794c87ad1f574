package workflows

import (
	"context"
	"errors"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/models"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSagaRepository struct {
	inserted  []*models.Saga
	updates   int
	insertErr error
}

func (r *fakeSagaRepository) InsertSaga(ctx context.Context, saga *models.Saga) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, saga)
	return nil
}

func (r *fakeSagaRepository) UpdateSaga(ctx context.Context, saga *models.Saga) error {
	r.updates++
	return nil
}

func (r *fakeSagaRepository) FindSagaByID(ctx context.Context, sagaID string) (*models.Saga, error) {
	for _, saga := range r.inserted {
		if saga.ID == sagaID {
			return saga, nil
		}
	}
	return nil, exceptions.ErrSagaNotFound(nil)
}

func (r *fakeSagaRepository) FindSagasByPatient(ctx context.Context, patientUUID string) ([]models.Saga, error) {
	return nil, nil
}

type fakeVisitClient struct {
	createErr   error
	endedVisits []string
}

func (c *fakeVisitClient) FindActiveVisits(ctx context.Context, patientUUIDs []string) ([]emr_dto.Visit, error) {
	return nil, nil
}

func (c *fakeVisitClient) CreateVisit(ctx context.Context, request *emr_dto.CreateVisitRequest) (*emr_dto.Visit, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}
	return &emr_dto.Visit{UUID: "visit-1", StartDatetime: request.StartDatetime}, nil
}

func (c *fakeVisitClient) EndVisit(ctx context.Context, visitUUID, stopDatetime string) (*emr_dto.Visit, error) {
	c.endedVisits = append(c.endedVisits, visitUUID)
	return &emr_dto.Visit{UUID: visitUUID, StopDatetime: stopDatetime}, nil
}

type fakeEncounterClient struct {
	createErr error
	voided    []string
}

func (c *fakeEncounterClient) CreateEncounter(ctx context.Context, request *emr_dto.CreateEncounterRequest) (*emr_dto.Encounter, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}
	return &emr_dto.Encounter{UUID: "encounter-1"}, nil
}

func (c *fakeEncounterClient) VoidEncounter(ctx context.Context, encounterUUID, reason string) error {
	c.voided = append(c.voided, encounterUUID)
	return nil
}

func (c *fakeEncounterClient) FindEncountersByPatientAndType(ctx context.Context, patientUUID, encounterTypeUUID string) ([]emr_dto.Encounter, error) {
	return nil, nil
}

type fakeBedClient struct {
	assignErr  error
	assigned   []int
	unassigned []string
}

func (c *fakeBedClient) AssignBed(ctx context.Context, bedID int, request *emr_dto.AssignBedRequest) (*emr_dto.BedAssignment, error) {
	if c.assignErr != nil {
		return nil, c.assignErr
	}
	c.assigned = append(c.assigned, bedID)
	return &emr_dto.BedAssignment{Bed: emr_dto.ResourceRef{UUID: "bed-uuid-1"}}, nil
}

func (c *fakeBedClient) UnassignBed(ctx context.Context, patientUUID, encounterUUID string) error {
	c.unassigned = append(c.unassigned, patientUUID)
	return nil
}

type fakeQueueClient struct {
	closeErr error
	closed   []string
	created  int
}

func (c *fakeQueueClient) ListActiveEntries(ctx context.Context, locationUUID string) ([]emr_dto.QueueEntry, error) {
	return nil, nil
}

func (c *fakeQueueClient) CreateEntry(ctx context.Context, request *emr_dto.CreateQueueEntryRequest) (*emr_dto.QueueEntry, error) {
	c.created++
	return &emr_dto.QueueEntry{UUID: "entry-recreated"}, nil
}

func (c *fakeQueueClient) CloseEntry(ctx context.Context, entryUUID, endedAt string) (*emr_dto.QueueEntry, error) {
	if c.closeErr != nil {
		return nil, c.closeErr
	}
	c.closed = append(c.closed, entryUUID)
	return &emr_dto.QueueEntry{UUID: entryUUID, EndedAt: endedAt}, nil
}

type fakeBillingClient struct {
	bills    []emr_dto.PatientBill
	listErr  error
	created  []*emr_dto.CreateBillRequest
	services []emr_dto.BillableService
}

func (c *fakeBillingClient) ListBillableServices(ctx context.Context) ([]emr_dto.BillableService, error) {
	return c.services, nil
}

func (c *fakeBillingClient) CreateBill(ctx context.Context, request *emr_dto.CreateBillRequest) (*emr_dto.PatientBill, error) {
	c.created = append(c.created, request)
	return &emr_dto.PatientBill{UUID: "bill-1", Status: constvars.BillStatusPending}, nil
}

func (c *fakeBillingClient) FindBillsByPatient(ctx context.Context, patientUUID string) ([]emr_dto.PatientBill, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.bills, nil
}

type fakePersonClient struct {
	attributes []string
}

func (c *fakePersonClient) CreatePersonAttribute(ctx context.Context, personUUID string, request *emr_dto.CreatePersonAttributeRequest) (*emr_dto.PersonAttribute, error) {
	c.attributes = append(c.attributes, request.AttributeType)
	return &emr_dto.PersonAttribute{UUID: "attr-1"}, nil
}

type fakePatientClient struct{}

func (c *fakePatientClient) FindDeceasedPatientByID(ctx context.Context, patientUUID string) (*emr_dto.DeceasedPatient, error) {
	return &emr_dto.DeceasedPatient{UUID: patientUUID, Person: emr_dto.Person{UUID: "person-1"}}, nil
}

func (c *fakePatientClient) SearchDeceasedPatients(ctx context.Context, query string, limit, startIndex int) (*emr_dto.DeceasedPatientList, error) {
	return &emr_dto.DeceasedPatientList{}, nil
}

type fakeTaggedCache struct {
	invalidated [][]string
}

func (c *fakeTaggedCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *fakeTaggedCache) SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration, tags ...string) error {
	return nil
}

func (c *fakeTaggedCache) InvalidateTags(ctx context.Context, tags ...string) error {
	c.invalidated = append(c.invalidated, tags)
	return nil
}

type fakeEventPublisher struct {
	events []*models.MortuaryEvent
}

func (p *fakeEventPublisher) PublishMortuaryEvent(ctx context.Context, event *models.MortuaryEvent) error {
	p.events = append(p.events, event)
	return nil
}

type workflowFixture struct {
	usecase   *workflowUsecase
	visits    *fakeVisitClient
	encounter *fakeEncounterClient
	beds      *fakeBedClient
	queue     *fakeQueueClient
	billing   *fakeBillingClient
	persons   *fakePersonClient
	sagas     *fakeSagaRepository
	cache     *fakeTaggedCache
	events    *fakeEventPublisher
}

func newWorkflowFixture() *workflowFixture {
	fixture := &workflowFixture{
		visits:    &fakeVisitClient{},
		encounter: &fakeEncounterClient{},
		beds:      &fakeBedClient{},
		queue:     &fakeQueueClient{},
		billing:   &fakeBillingClient{},
		persons:   &fakePersonClient{},
		sagas:     &fakeSagaRepository{},
		cache:     &fakeTaggedCache{},
		events:    &fakeEventPublisher{},
	}
	fixture.usecase = &workflowUsecase{
		VisitEmrClient:     fixture.visits,
		EncounterEmrClient: fixture.encounter,
		BedEmrClient:       fixture.beds,
		QueueEmrClient:     fixture.queue,
		BillingEmrClient:   fixture.billing,
		PersonEmrClient:    fixture.persons,
		PatientEmrClient:   &fakePatientClient{},
		SagaRepository:     fixture.sagas,
		Cache:              fixture.cache,
		EventPublisher:     fixture.events,
		InternalConfig: &config.InternalConfig{
			Mortuary: config.Mortuary{
				LocationUUID:               "ward-1",
				VisitTypeUUID:              "visit-type-1",
				AdmissionEncounterType:     "enc-type-admit",
				DischargeEncounterType:     "enc-type-discharge",
				DisposalEncounterType:      "enc-type-dispose",
				BedAssignmentEncounterType: "enc-type-bed",
			},
		},
		Log: zap.NewNop(),
	}
	return fixture
}

func TestCheckPendingBills(t *testing.T) {
	fixture := newWorkflowFixture()
	fixture.billing.bills = []emr_dto.PatientBill{
		{UUID: "bill-1", Status: constvars.BillStatusPending, Balance: 1500, Total: 1500},
		{UUID: "bill-2", Status: constvars.BillStatusPending, Balance: 500, Total: 2000},
		{UUID: "bill-3", Status: constvars.BillStatusPending, Voided: true, Balance: 900},
		{UUID: "bill-4", Status: constvars.BillStatusPaid, Balance: 0, Total: 300},
	}

	check, err := fixture.usecase.CheckPendingBills(context.Background(), "patient-1")
	assert.NoError(t, err)
	assert.True(t, check.Blocked, "outstanding pending balance should block release")
	assert.Equal(t, float64(2000), check.Outstanding, "only non-voided pending balances count")
	assert.Len(t, check.Bills, 4, "every bill appears in the summary")
}

func TestCheckPendingBillsAllSettled(t *testing.T) {
	fixture := newWorkflowFixture()
	fixture.billing.bills = []emr_dto.PatientBill{
		{UUID: "bill-1", Status: constvars.BillStatusPaid, Balance: 0, Total: 1500},
	}

	check, err := fixture.usecase.CheckPendingBills(context.Background(), "patient-1")
	assert.NoError(t, err)
	assert.False(t, check.Blocked)
	assert.Equal(t, float64(0), check.Outstanding)
}

func TestDischargePatientBlockedByPendingBills(t *testing.T) {
	fixture := newWorkflowFixture()
	fixture.billing.bills = []emr_dto.PatientBill{
		{UUID: "bill-1", Status: constvars.BillStatusPending, Balance: 750},
	}

	result, err := fixture.usecase.DischargePatient(context.Background(), &requests.DischargePatientRequest{
		PatientUUID: "patient-1",
		BedID:       1,
		VisitUUID:   "visit-1",
	})

	assert.Nil(t, result)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "pending bills should block with a conflict")
	assert.Empty(t, fixture.sagas.inserted, "no saga should start while bills are outstanding")
	assert.Empty(t, fixture.encounter.voided)
}

func TestAdmitPatientHappyPath(t *testing.T) {
	fixture := newWorkflowFixture()

	result, err := fixture.usecase.AdmitPatient(context.Background(), &requests.AdmitPatientRequest{
		PatientUUID:    "patient-1",
		BedID:          4,
		VisitTypeUUID:  "visit-type-1",
		QueueEntryUUID: "entry-1",
		LineItems: []requests.BillLineItemInput{
			{BillableServiceUUID: "service-1", Quantity: 1, Price: 1500},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, constvars.SagaStatusCompleted, result.Status)
	assert.Equal(t, constvars.WorkflowAdmit, result.Workflow)
	assert.Equal(t, "visit-1", result.VisitUUID)
	assert.Equal(t, "encounter-1", result.EncounterUUID)
	assert.Equal(t, "bed-uuid-1", result.BedUUID)
	assert.Equal(t, "bill-1", result.BillUUID)
	assert.Len(t, result.Steps, 5)

	assert.Equal(t, []int{4}, fixture.beds.assigned)
	assert.Equal(t, []string{"entry-1"}, fixture.queue.closed)
	assert.Len(t, fixture.events.events, 1, "a completed admit publishes one event")
	assert.Equal(t, "mortuary.admit", fixture.events.events[0].Type)
	assert.Equal(t, "bed-uuid-1", fixture.events.events[0].Details["bed_uuid"])
	assert.Equal(t, "bill-1", fixture.events.events[0].Details["bill_uuid"])
	assert.Len(t, fixture.cache.invalidated, 1)
	assert.Contains(t, fixture.cache.invalidated[0], constvars.CacheTagBeds)
	assert.Contains(t, fixture.cache.invalidated[0], constvars.CacheTagQueue)
}

func TestAdmitPatientCompensatesOnStepFailure(t *testing.T) {
	fixture := newWorkflowFixture()
	fixture.queue.closeErr = errors.New("queue service unavailable")

	result, err := fixture.usecase.AdmitPatient(context.Background(), &requests.AdmitPatientRequest{
		PatientUUID:    "patient-1",
		BedID:          4,
		VisitTypeUUID:  "visit-type-1",
		QueueEntryUUID: "entry-1",
		LineItems: []requests.BillLineItemInput{
			{BillableServiceUUID: "service-1", Quantity: 1, Price: 1500},
		},
	})

	assert.Error(t, err)
	assert.Equal(t, constvars.SagaStatusCompensated, result.Status)

	assert.Len(t, fixture.sagas.inserted, 1)
	saga := fixture.sagas.inserted[0]
	assert.Len(t, saga.Steps, 5)

	assert.Equal(t, constvars.SagaStepStatusCompensated, saga.Steps[0].Status, "visit step should be compensated")
	assert.Equal(t, constvars.SagaStepStatusCompensated, saga.Steps[1].Status, "encounter step should be compensated")
	assert.Equal(t, constvars.SagaStepStatusCompensated, saga.Steps[2].Status, "bed step should be compensated")
	assert.Equal(t, constvars.SagaStepStatusCompensationUnsupported, saga.Steps[3].Status, "the bill step has no undo")
	assert.Equal(t, constvars.SagaStepStatusFailed, saga.Steps[4].Status)

	assert.Equal(t, []string{"visit-1"}, fixture.visits.endedVisits, "the opened visit should be ended on rollback")
	assert.Equal(t, []string{"encounter-1"}, fixture.encounter.voided, "the admission encounter should be voided on rollback")
	assert.Equal(t, []string{"patient-1"}, fixture.beds.unassigned, "the assigned bed should be released on rollback")
	assert.Empty(t, fixture.events.events, "a failed workflow publishes nothing")
	assert.Empty(t, fixture.cache.invalidated, "a failed workflow invalidates nothing")
}

func TestAdmitPatientLedgerUnavailable(t *testing.T) {
	fixture := newWorkflowFixture()
	fixture.sagas.insertErr = errors.New("mongo: server selection timeout")

	result, err := fixture.usecase.AdmitPatient(context.Background(), &requests.AdmitPatientRequest{
		PatientUUID:   "patient-1",
		BedID:         4,
		VisitTypeUUID: "visit-type-1",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr, "a ledger outage must surface as a wrapped error, never a panic")
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	assert.NotNil(t, result)
	assert.Equal(t, constvars.SagaStatusFailed, result.Status)
	assert.Empty(t, result.Steps, "no step runs when the ledger cannot record the saga")
	assert.Empty(t, fixture.visits.endedVisits)
	assert.Empty(t, fixture.events.events)
	assert.Empty(t, fixture.cache.invalidated)
}

func TestSwapCompartment(t *testing.T) {
	t.Run("Move To New Bed", func(t *testing.T) {
		fixture := newWorkflowFixture()

		result, err := fixture.usecase.SwapCompartment(context.Background(), &requests.SwapCompartmentRequest{
			PatientUUID:  "patient-1",
			CurrentBedID: 2,
			NewBedID:     5,
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.SagaStatusCompleted, result.Status)
		assert.Equal(t, []string{"patient-1"}, fixture.beds.unassigned)
		assert.Equal(t, []int{5}, fixture.beds.assigned)
	})

	t.Run("Unassign Only", func(t *testing.T) {
		fixture := newWorkflowFixture()

		result, err := fixture.usecase.SwapCompartment(context.Background(), &requests.SwapCompartmentRequest{
			PatientUUID:  "patient-1",
			CurrentBedID: 2,
			NewBedID:     0,
		})

		assert.NoError(t, err)
		assert.Len(t, result.Steps, 2, "a zero target bed skips the reassignment step")
		assert.Empty(t, fixture.beds.assigned)
	})
}

func TestDisposePatientRecordsNextOfKin(t *testing.T) {
	fixture := newWorkflowFixture()

	result, err := fixture.usecase.DisposePatient(context.Background(), &requests.DisposePatientRequest{
		PatientUUID:    "patient-1",
		BedID:          1,
		VisitUUID:      "visit-1",
		DisposalMethod: "burial",
		NextOfKinName:  "Jane Otieno",
		NextOfKinPhone: "0712345678",
	})

	assert.NoError(t, err)
	assert.Equal(t, constvars.SagaStatusCompleted, result.Status)
	assert.Contains(t, fixture.persons.attributes, constvars.PersonAttributeNextOfKinName)
	assert.Contains(t, fixture.persons.attributes, constvars.PersonAttributeNextOfKinPhone)
	assert.NotContains(t, fixture.persons.attributes, constvars.PersonAttributeCourtOrderNumber, "empty attributes are not written")
	assert.Equal(t, []string{"visit-1"}, fixture.visits.endedVisits)
}

func TestGetSaga(t *testing.T) {
	fixture := newWorkflowFixture()
	fixture.sagas.inserted = []*models.Saga{{
		ID:          "saga-1",
		Workflow:    constvars.WorkflowAdmit,
		PatientUUID: "patient-1",
		Status:      constvars.SagaStatusCompleted,
		Steps: []models.SagaStep{
			{Name: "create-visit", Status: constvars.SagaStepStatusDone, ResourceID: "visit-1"},
		},
	}}

	t.Run("Found", func(t *testing.T) {
		result, err := fixture.usecase.GetSaga(context.Background(), "saga-1")
		assert.NoError(t, err)
		assert.Equal(t, "visit-1", result.VisitUUID)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := fixture.usecase.GetSaga(context.Background(), "saga-unknown")
		assert.Error(t, err)
	})
}

type fakeConceptClient struct{}

func (c *fakeConceptClient) SearchConcepts(ctx context.Context, query string) ([]emr_dto.Concept, error) {
	return []emr_dto.Concept{
		{UUID: "concept-1", Display: "Myocardial infarction"},
		{UUID: "concept-2", Display: "Myocarditis"},
	}, nil
}

func TestSearchConcepts(t *testing.T) {
	usecase := &workflowUsecase{ConceptEmrClient: &fakeConceptClient{}, Log: zap.NewNop()}

	items, err := usecase.SearchConcepts(context.Background(), "myocard")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "concept-1", items[0].UUID)
	assert.Equal(t, "Myocardial infarction", items[0].Display)
}
