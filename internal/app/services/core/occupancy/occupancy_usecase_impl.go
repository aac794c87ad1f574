package occupancy

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/dto/responses"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/fhir_dto"
	"mortuary-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	occupancyUsecaseInstance OccupancyUsecase
	onceOccupancyUsecase     sync.Once
)

type occupancyUsecase struct {
	AdmissionLocationEmrClient contracts.AdmissionLocationEmrClient
	VisitEmrClient             contracts.VisitEmrClient
	QueueEmrClient             contracts.QueueEmrClient
	PatientEmrClient           contracts.PatientEmrClient
	EncounterFhirClient        contracts.EncounterFhirClient
	Cache                      contracts.TaggedCache
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
}

func NewOccupancyUsecase(
	admissionLocationEmrClient contracts.AdmissionLocationEmrClient,
	visitEmrClient contracts.VisitEmrClient,
	queueEmrClient contracts.QueueEmrClient,
	patientEmrClient contracts.PatientEmrClient,
	encounterFhirClient contracts.EncounterFhirClient,
	cache contracts.TaggedCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) OccupancyUsecase {
	onceOccupancyUsecase.Do(func() {
		occupancyUsecaseInstance = &occupancyUsecase{
			AdmissionLocationEmrClient: admissionLocationEmrClient,
			VisitEmrClient:             visitEmrClient,
			QueueEmrClient:             queueEmrClient,
			PatientEmrClient:           patientEmrClient,
			EncounterFhirClient:        encounterFhirClient,
			Cache:                      cache,
			InternalConfig:             internalConfig,
			Log:                        logger,
		}
	})
	return occupancyUsecaseInstance
}

func (uc *occupancyUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Mortuary.CacheTTLSeconds) * time.Second
}

func (uc *occupancyUsecase) GetBedLayout(ctx context.Context, pagination *requests.Pagination) (*responses.BedLayoutResponse, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("occupancyUsecase.GetBedLayout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cacheKey := fmt.Sprintf("beds:layout:%d:%d:%s", pagination.Page, pagination.PageSize, pagination.Search)
	cached := new(responses.BedLayoutResponse)
	if found, err := uc.Cache.GetJSON(ctx, cacheKey, cached); err == nil && found {
		return cached, cached.TotalBeds, nil
	}

	location, visitsByPatient, err := uc.fetchWardState(ctx)
	if err != nil {
		return nil, 0, err
	}

	beds := BuildBedCards(location, visitsByPatient, time.Now())
	beds = utils.FilterBedCards(beds, pagination.Search)
	total := len(beds)
	start, end := utils.PageBounds(total, pagination.Page, pagination.PageSize)

	response := &responses.BedLayoutResponse{
		WardUUID:     location.Ward.UUID,
		WardName:     location.Ward.Display,
		TotalBeds:    location.TotalBeds,
		OccupiedBeds: location.OccupiedBeds,
		Beds:         beds[start:end],
	}

	if err := uc.Cache.SetJSON(ctx, cacheKey, response, uc.cacheTTL(), constvars.CacheTagBeds, constvars.CacheTagVisits); err != nil {
		uc.Log.Warn("occupancyUsecase.GetBedLayout cache store failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}
	return response, total, nil
}

func (uc *occupancyUsecase) ListAwaitingPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("occupancyUsecase.ListAwaitingPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entries, err := uc.QueueEmrClient.ListActiveEntries(ctx, uc.InternalConfig.Mortuary.LocationUUID)
	if err != nil {
		return nil, 0, err
	}

	location, err := uc.AdmissionLocationEmrClient.GetAdmissionLocation(ctx, uc.InternalConfig.Mortuary.LocationUUID)
	if err != nil {
		return nil, 0, err
	}
	excluded := occupiedPatientSet(location)

	// An open visit marks the patient admitted even before the occupant
	// list catches up with the bed assignment.
	if len(entries) > 0 {
		entryPatients := make([]string, 0, len(entries))
		for _, entry := range entries {
			entryPatients = append(entryPatients, entry.Patient.UUID)
		}
		visits, err := uc.VisitEmrClient.FindActiveVisits(ctx, entryPatients)
		if err != nil {
			return nil, 0, err
		}
		for _, visit := range visits {
			excluded[visit.Patient.UUID] = true
		}
	}

	details := make(map[string]*emr_dto.DeceasedPatient, len(entries))
	for _, entry := range entries {
		if excluded[entry.Patient.UUID] {
			continue
		}
		detail, err := uc.PatientEmrClient.FindDeceasedPatientByID(ctx, entry.Patient.UUID)
		if err != nil {
			uc.Log.Warn("occupancyUsecase.ListAwaitingPatients patient detail lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, entry.Patient.UUID),
				zap.Error(err),
			)
			continue
		}
		details[entry.Patient.UUID] = detail
	}

	patients := ClassifyAwaiting(entries, details, excluded, time.Now())
	return uc.filterAndPage(patients, pagination)
}

func (uc *occupancyUsecase) ListAdmittedPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("occupancyUsecase.ListAdmittedPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cacheKey := fmt.Sprintf("patients:admitted:%d:%d:%s", pagination.Page, pagination.PageSize, pagination.Search)
	var cached pagedPatients
	if found, err := uc.Cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return cached.Patients, cached.Total, nil
	}

	location, visitsByPatient, err := uc.fetchWardState(ctx)
	if err != nil {
		return nil, 0, err
	}

	patients := ClassifyAdmitted(location, visitsByPatient, time.Now())
	paged, total, err := uc.filterAndPage(patients, pagination)
	if err != nil {
		return nil, 0, err
	}

	if err := uc.Cache.SetJSON(ctx, cacheKey, &pagedPatients{Patients: paged, Total: total}, uc.cacheTTL(), constvars.CacheTagBeds, constvars.CacheTagVisits); err != nil {
		uc.Log.Warn("occupancyUsecase.ListAdmittedPatients cache store failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}
	return paged, total, nil
}

func (uc *occupancyUsecase) ListDischargedPatients(ctx context.Context, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("occupancyUsecase.ListDischargedPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cacheKey := fmt.Sprintf("patients:discharged:%d:%d:%s", pagination.Page, pagination.PageSize, pagination.Search)
	var cached pagedPatients
	if found, err := uc.Cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return cached.Patients, cached.Total, nil
	}

	encounters, err := uc.fetchDischargeEncounters(ctx)
	if err != nil {
		return nil, 0, err
	}

	location, err := uc.AdmissionLocationEmrClient.GetAdmissionLocation(ctx, uc.InternalConfig.Mortuary.LocationUUID)
	if err != nil {
		return nil, 0, err
	}
	occupied := occupiedPatientSet(location)

	patients := ClassifyDischarged(encounters, time.Now())
	patients = excludeBeddedAndDeduplicate(patients, occupied)
	paged, total, err := uc.filterAndPage(patients, pagination)
	if err != nil {
		return nil, 0, err
	}

	if err := uc.Cache.SetJSON(ctx, cacheKey, &pagedPatients{Patients: paged, Total: total}, uc.cacheTTL(), constvars.CacheTagEncounters, constvars.CacheTagBeds); err != nil {
		uc.Log.Warn("occupancyUsecase.ListDischargedPatients cache store failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}
	return paged, total, nil
}

// fetchDischargeEncounters walks the FHIR bundle pages until the reported
// total is collected.
func (uc *occupancyUsecase) fetchDischargeEncounters(ctx context.Context) ([]fhir_dto.Encounter, error) {
	encounters := []fhir_dto.Encounter{}
	offset := 0
	for {
		page, total, err := uc.EncounterFhirClient.SearchEncounters(
			ctx,
			uc.InternalConfig.Mortuary.DischargeEncounterType,
			uc.InternalConfig.Mortuary.LocationUUID,
			constvars.FhirFetchPageSize,
			offset,
		)
		if err != nil {
			return nil, err
		}
		encounters = append(encounters, page...)
		offset += len(page)
		if len(page) == 0 || offset >= total {
			return encounters, nil
		}
	}
}

// excludeBeddedAndDeduplicate drops patients who still occupy a compartment
// and collapses repeat discharge encounters to one row per patient.
func excludeBeddedAndDeduplicate(patients []responses.MortuaryPatient, occupied map[string]bool) []responses.MortuaryPatient {
	seen := map[string]bool{}
	result := []responses.MortuaryPatient{}
	for _, patient := range patients {
		if occupied[patient.PatientUUID] || seen[patient.PatientUUID] {
			continue
		}
		seen[patient.PatientUUID] = true
		result = append(result, patient)
	}
	return result
}

// fetchWardState resolves the ward layout and the open visits for every
// occupant in one batched visit query.
func (uc *occupancyUsecase) fetchWardState(ctx context.Context) (*emr_dto.AdmissionLocation, map[string]emr_dto.Visit, error) {
	location, err := uc.AdmissionLocationEmrClient.GetAdmissionLocation(ctx, uc.InternalConfig.Mortuary.LocationUUID)
	if err != nil {
		return nil, nil, err
	}

	patientUUIDs := []string{}
	for _, layout := range location.BedLayouts {
		for _, patient := range layout.Patients {
			patientUUIDs = append(patientUUIDs, patient.UUID)
		}
	}

	visitsByPatient := map[string]emr_dto.Visit{}
	if len(patientUUIDs) > 0 {
		visits, err := uc.VisitEmrClient.FindActiveVisits(ctx, patientUUIDs)
		if err != nil {
			return nil, nil, err
		}
		for _, visit := range visits {
			visitsByPatient[visit.Patient.UUID] = visit
		}
	}
	return location, visitsByPatient, nil
}

func (uc *occupancyUsecase) filterAndPage(patients []responses.MortuaryPatient, pagination *requests.Pagination) ([]responses.MortuaryPatient, int, error) {
	filtered := utils.FilterMortuaryPatients(patients, pagination.Search)
	total := len(filtered)
	start, end := utils.PageBounds(total, pagination.Page, pagination.PageSize)
	return filtered[start:end], total, nil
}

func occupiedPatientSet(location *emr_dto.AdmissionLocation) map[string]bool {
	occupied := map[string]bool{}
	for _, layout := range location.BedLayouts {
		for _, patient := range layout.Patients {
			occupied[patient.UUID] = true
		}
	}
	return occupied
}

type pagedPatients struct {
	Patients []responses.MortuaryPatient `json:"patients"`
	Total    int                         `json:"total"`
}
