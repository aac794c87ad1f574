package occupancy

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLocationClient struct {
	location *emr_dto.AdmissionLocation
}

func (c *fakeLocationClient) GetAdmissionLocation(ctx context.Context, wardUUID string) (*emr_dto.AdmissionLocation, error) {
	return c.location, nil
}

func (c *fakeLocationClient) ListAdmissionLocations(ctx context.Context) ([]emr_dto.AdmissionLocation, error) {
	return []emr_dto.AdmissionLocation{*c.location}, nil
}

type fakeActiveVisitClient struct {
	visits  []emr_dto.Visit
	queried [][]string
}

func (c *fakeActiveVisitClient) FindActiveVisits(ctx context.Context, patientUUIDs []string) ([]emr_dto.Visit, error) {
	c.queried = append(c.queried, patientUUIDs)
	return c.visits, nil
}

func (c *fakeActiveVisitClient) CreateVisit(ctx context.Context, request *emr_dto.CreateVisitRequest) (*emr_dto.Visit, error) {
	return nil, nil
}

func (c *fakeActiveVisitClient) EndVisit(ctx context.Context, visitUUID, stopDatetime string) (*emr_dto.Visit, error) {
	return nil, nil
}

type fakeQueueEntriesClient struct {
	entries []emr_dto.QueueEntry
}

func (c *fakeQueueEntriesClient) ListActiveEntries(ctx context.Context, locationUUID string) ([]emr_dto.QueueEntry, error) {
	return c.entries, nil
}

func (c *fakeQueueEntriesClient) CreateEntry(ctx context.Context, request *emr_dto.CreateQueueEntryRequest) (*emr_dto.QueueEntry, error) {
	return nil, nil
}

func (c *fakeQueueEntriesClient) CloseEntry(ctx context.Context, entryUUID, endedAt string) (*emr_dto.QueueEntry, error) {
	return nil, nil
}

type fakePatientDetailClient struct{}

func (c *fakePatientDetailClient) FindDeceasedPatientByID(ctx context.Context, patientUUID string) (*emr_dto.DeceasedPatient, error) {
	return &emr_dto.DeceasedPatient{UUID: patientUUID, Person: emr_dto.Person{UUID: "person-" + patientUUID}}, nil
}

func (c *fakePatientDetailClient) SearchDeceasedPatients(ctx context.Context, query string, limit, startIndex int) (*emr_dto.DeceasedPatientList, error) {
	return &emr_dto.DeceasedPatientList{}, nil
}

type fakeEncounterSearchClient struct {
	pages     [][]fhir_dto.Encounter
	total     int
	listCalls int
}

func (c *fakeEncounterSearchClient) SearchEncounters(ctx context.Context, encounterTypeUUID, locationUUID string, count, offset int) ([]fhir_dto.Encounter, int, error) {
	call := c.listCalls
	c.listCalls++
	if call >= len(c.pages) {
		return nil, c.total, nil
	}
	return c.pages[call], c.total, nil
}

type missCache struct{}

func (c *missCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *missCache) SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration, tags ...string) error {
	return nil
}

func (c *missCache) InvalidateTags(ctx context.Context, tags ...string) error {
	return nil
}

func dischargeEncounter(patientUUID, display, end string) fhir_dto.Encounter {
	return fhir_dto.Encounter{
		ResourceType: "Encounter",
		Status:       "finished",
		Subject:      fhir_dto.Reference{Reference: "Patient/" + patientUUID, Display: display},
		Period:       &fhir_dto.Period{Start: "2026-08-20T08:00:00+03:00", End: end},
	}
}

func occupiedWard(patientUUIDs ...string) *emr_dto.AdmissionLocation {
	layouts := make([]emr_dto.BedLayout, 0, len(patientUUIDs))
	for index, uuid := range patientUUIDs {
		layouts = append(layouts, emr_dto.BedLayout{
			BedID:     index + 1,
			BedNumber: fmt.Sprintf("MB-%02d", index+1),
			Patients:  []emr_dto.DeceasedPatient{{UUID: uuid}},
		})
	}
	return &emr_dto.AdmissionLocation{
		Ward:         emr_dto.ResourceRef{UUID: "ward-1", Display: "Mortuary Ward"},
		TotalBeds:    len(layouts),
		OccupiedBeds: len(layouts),
		BedLayouts:   layouts,
	}
}

func newOccupancyFixture(location *emr_dto.AdmissionLocation, fhir *fakeEncounterSearchClient) (*occupancyUsecase, *fakeActiveVisitClient, *fakeQueueEntriesClient) {
	visits := &fakeActiveVisitClient{}
	queue := &fakeQueueEntriesClient{}
	usecase := &occupancyUsecase{
		AdmissionLocationEmrClient: &fakeLocationClient{location: location},
		VisitEmrClient:             visits,
		QueueEmrClient:             queue,
		PatientEmrClient:           &fakePatientDetailClient{},
		EncounterFhirClient:        fhir,
		Cache:                      &missCache{},
		InternalConfig: &config.InternalConfig{
			Mortuary: config.Mortuary{
				LocationUUID:           "ward-1",
				DischargeEncounterType: "enc-type-discharge",
				CacheTTLSeconds:        60,
			},
		},
		Log: zap.NewNop(),
	}
	return usecase, visits, queue
}

func TestListDischargedPatients(t *testing.T) {
	pagination := &requests.Pagination{Page: 1, PageSize: 10}

	t.Run("Excludes Currently Bedded Patients", func(t *testing.T) {
		fhir := &fakeEncounterSearchClient{
			pages: [][]fhir_dto.Encounter{{
				dischargeEncounter("patient-1", "John Otieno", "2026-08-22T08:00:00+03:00"),
				dischargeEncounter("patient-1", "John Otieno", "2026-08-26T08:00:00+03:00"),
				dischargeEncounter("patient-2", "Mary Wanjiku", "2026-08-25T08:00:00+03:00"),
			}},
			total: 3,
		}

		usecase, _, _ := newOccupancyFixture(occupiedWard("patient-1"), fhir)
		patients, total, err := usecase.ListDischargedPatients(context.Background(), pagination)

		assert.NoError(t, err)
		assert.Equal(t, 1, total, "a re-admitted patient with discharge history stays out of the discharged view")
		assert.Len(t, patients, 1)
		assert.Equal(t, "patient-2", patients[0].PatientUUID)
	})

	t.Run("Deduplicates Repeat Discharges", func(t *testing.T) {
		fhir := &fakeEncounterSearchClient{
			pages: [][]fhir_dto.Encounter{{
				dischargeEncounter("patient-2", "Mary Wanjiku", "2026-08-21T08:00:00+03:00"),
				dischargeEncounter("patient-2", "Mary Wanjiku", "2026-08-25T08:00:00+03:00"),
			}},
			total: 2,
		}

		usecase, _, _ := newOccupancyFixture(occupiedWard(), fhir)
		patients, total, err := usecase.ListDischargedPatients(context.Background(), pagination)

		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, patients, 1, "repeat discharges collapse to one row per patient")
	})

	t.Run("Walks Every Bundle Page", func(t *testing.T) {
		fhir := &fakeEncounterSearchClient{
			pages: [][]fhir_dto.Encounter{
				{dischargeEncounter("patient-2", "Mary Wanjiku", "2026-08-25T08:00:00+03:00")},
				{dischargeEncounter("patient-3", "Peter Kamau", "2026-08-26T08:00:00+03:00")},
			},
			total: 2,
		}

		usecase, _, _ := newOccupancyFixture(occupiedWard(), fhir)
		patients, total, err := usecase.ListDischargedPatients(context.Background(), pagination)

		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, patients, 2)
		assert.Equal(t, 2, fhir.listCalls, "every bundle page should be fetched before classifying")
	})

	t.Run("Search Term And Total Agree", func(t *testing.T) {
		fhir := &fakeEncounterSearchClient{
			pages: [][]fhir_dto.Encounter{{
				dischargeEncounter("patient-2", "Mary Wanjiku", "2026-08-25T08:00:00+03:00"),
				dischargeEncounter("patient-3", "Peter Kamau", "2026-08-26T08:00:00+03:00"),
			}},
			total: 2,
		}

		usecase, _, _ := newOccupancyFixture(occupiedWard(), fhir)
		patients, total, err := usecase.ListDischargedPatients(context.Background(), &requests.Pagination{Page: 1, PageSize: 10, Search: "wanjiku"})

		assert.NoError(t, err)
		assert.Equal(t, 1, total, "the total must count the filtered rows, not the raw bundle")
		assert.Len(t, patients, 1)
		assert.Equal(t, "patient-2", patients[0].PatientUUID)
	})
}

func TestListAwaitingPatientsExcludesAdmitted(t *testing.T) {
	fhir := &fakeEncounterSearchClient{}
	usecase, visits, queue := newOccupancyFixture(occupiedWard("patient-2"), fhir)

	queue.entries = []emr_dto.QueueEntry{
		{UUID: "entry-1", Patient: emr_dto.ResourceRef{UUID: "patient-1", Display: "John Otieno"}, StartedAt: "2026-08-27"},
		{UUID: "entry-2", Patient: emr_dto.ResourceRef{UUID: "patient-2", Display: "Mary Wanjiku"}, StartedAt: "2026-08-27"},
		{UUID: "entry-3", Patient: emr_dto.ResourceRef{UUID: "patient-3", Display: "Peter Kamau"}, StartedAt: "2026-08-27"},
	}
	// patient-3 already has an open visit but no occupant-list entry yet.
	visits.visits = []emr_dto.Visit{
		{UUID: "visit-3", Patient: emr_dto.ResourceRef{UUID: "patient-3"}},
	}

	patients, total, err := usecase.ListAwaitingPatients(context.Background(), &requests.Pagination{Page: 1, PageSize: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, patients, 1)
	assert.Equal(t, "patient-1", patients[0].PatientUUID, "only the patient with no bed and no open visit is awaiting")
	assert.Equal(t, [][]string{{"patient-1", "patient-2", "patient-3"}}, visits.queried, "open visits are resolved for every queued patient")
}
