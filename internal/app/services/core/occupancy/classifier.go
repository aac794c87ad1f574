package occupancy

import (
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/responses"
	"mortuary-service/internal/pkg/emr_dto"
	"mortuary-service/internal/pkg/fhir_dto"
	"mortuary-service/internal/pkg/utils"
	"sort"
	"time"
)

// buildAdmittedPatient derives the admitted-stage view of a bed occupant.
// The day counters come from the death date; length of stay prefers the
// active visit when one exists.
func buildAdmittedPatient(patient emr_dto.DeceasedPatient, layout emr_dto.BedLayout, visit *emr_dto.Visit, now time.Time) responses.MortuaryPatient {
	result := responses.MortuaryPatient{
		Stage:       constvars.StageAdmitted,
		PatientUUID: patient.UUID,
		PersonUUID:  patient.Person.UUID,
		Name:        patient.Person.Display,
		Gender:      patient.Person.Gender,
		Age:         patient.Person.Age,
		DeathDate:   patient.Person.DeathDate,
		BedID:       layout.BedID,
		BedNumber:   layout.BedNumber,
		BedType:     bedTypeDisplay(layout.BedType),
	}
	if patient.Person.CauseOfDeath != nil {
		result.CauseOfDeath = patient.Person.CauseOfDeath.Display
	}

	result.DaysInMortuary = utils.DaysInMortuary(patient.Person.DeathDate, now)
	result.SeverityTier = utils.SeverityTier(result.DaysInMortuary)

	var visitStart string
	if visit != nil {
		result.VisitUUID = visit.UUID
		result.AdmittedAt = visit.StartDatetime
		visitStart = visit.StartDatetime
	}
	result.LengthOfStayDays = utils.LengthOfStay(visitStart, patient.Person.DeathDate, now)
	return result
}

func bedTypeDisplay(bedType *emr_dto.BedType) string {
	if bedType == nil {
		return constvars.DefaultBedTypeDisplay
	}
	if bedType.DisplayName != "" {
		return bedType.DisplayName
	}
	if bedType.Name != "" {
		return bedType.Name
	}
	return constvars.DefaultBedTypeDisplay
}

// BuildBedCards flattens a ward layout into bed cards ordered by grid
// position. A bed holding more than one body is marked shared.
func BuildBedCards(location *emr_dto.AdmissionLocation, visitsByPatient map[string]emr_dto.Visit, now time.Time) []responses.BedCard {
	layouts := make([]emr_dto.BedLayout, len(location.BedLayouts))
	copy(layouts, location.BedLayouts)
	sort.SliceStable(layouts, func(i, j int) bool {
		if layouts[i].RowNumber != layouts[j].RowNumber {
			return layouts[i].RowNumber < layouts[j].RowNumber
		}
		return layouts[i].ColumnNumber < layouts[j].ColumnNumber
	})

	cards := make([]responses.BedCard, 0, len(layouts))
	for _, layout := range layouts {
		card := responses.BedCard{
			BedID:         layout.BedID,
			BedUUID:       layout.BedUUID,
			BedNumber:     layout.BedNumber,
			BedType:       bedTypeDisplay(layout.BedType),
			Status:        bedStatus(layout),
			Shared:        len(layout.Patients) > 1,
			OccupantCount: len(layout.Patients),
			Occupants:     []responses.MortuaryPatient{},
		}
		for _, patient := range layout.Patients {
			var visit *emr_dto.Visit
			if v, ok := visitsByPatient[patient.UUID]; ok {
				visit = &v
			}
			card.Occupants = append(card.Occupants, buildAdmittedPatient(patient, layout, visit, now))
		}
		cards = append(cards, card)
	}
	return cards
}

// bedStatus trusts the occupant list over the reported status flag, which
// lags behind assignments on some EMR versions.
func bedStatus(layout emr_dto.BedLayout) string {
	if len(layout.Patients) > 0 {
		return constvars.BedStatusOccupied
	}
	if layout.Status != "" {
		return layout.Status
	}
	return constvars.BedStatusAvailable
}

// ClassifyAdmitted lists every bed occupant in the ward as an admitted-stage
// patient.
func ClassifyAdmitted(location *emr_dto.AdmissionLocation, visitsByPatient map[string]emr_dto.Visit, now time.Time) []responses.MortuaryPatient {
	patients := []responses.MortuaryPatient{}
	for _, card := range BuildBedCards(location, visitsByPatient, now) {
		patients = append(patients, card.Occupants...)
	}
	return patients
}

// ClassifyAwaiting maps active queue entries to awaiting-stage patients,
// skipping anyone who already occupies a compartment.
func ClassifyAwaiting(entries []emr_dto.QueueEntry, details map[string]*emr_dto.DeceasedPatient, occupied map[string]bool, now time.Time) []responses.MortuaryPatient {
	patients := []responses.MortuaryPatient{}
	for _, entry := range entries {
		if occupied[entry.Patient.UUID] {
			continue
		}

		patient := responses.MortuaryPatient{
			Stage:          constvars.StageAwaiting,
			PatientUUID:    entry.Patient.UUID,
			Name:           entry.Patient.Display,
			QueueEntryUUID: entry.UUID,
			QueuedAt:       entry.StartedAt,
			DaysInQueue:    utils.DaysInQueue(entry.StartedAt, now),
		}
		if detail, ok := details[entry.Patient.UUID]; ok {
			patient.PersonUUID = detail.Person.UUID
			patient.Name = detail.Person.Display
			patient.Gender = detail.Person.Gender
			patient.Age = detail.Person.Age
			patient.DeathDate = detail.Person.DeathDate
			if detail.Person.CauseOfDeath != nil {
				patient.CauseOfDeath = detail.Person.CauseOfDeath.Display
			}
		}

		patient.DaysInMortuary = utils.DaysInMortuary(patient.DeathDate, now)
		if patient.DaysInMortuary == 0 {
			patient.DaysInMortuary = patient.DaysInQueue
		}
		patient.SeverityTier = utils.SeverityTier(patient.DaysInMortuary)
		patients = append(patients, patient)
	}
	return patients
}

// ClassifyDischarged maps discharge encounters from the FHIR search to
// discharged-stage patients.
func ClassifyDischarged(encounters []fhir_dto.Encounter, now time.Time) []responses.MortuaryPatient {
	patients := []responses.MortuaryPatient{}
	for _, encounter := range encounters {
		patient := responses.MortuaryPatient{
			Stage:       constvars.StageDischarged,
			PatientUUID: referenceID(encounter.Subject.Reference),
			Name:        encounter.Subject.Display,
		}
		if encounter.Period != nil {
			patient.DischargedAt = encounter.Period.Start
			if encounter.Period.End != "" {
				patient.DischargedAt = encounter.Period.End
			}
		}
		patient.DaysInMortuary = utils.DaysSince(patient.DischargedAt, now)
		patient.SeverityTier = utils.SeverityTier(patient.DaysInMortuary)
		patients = append(patients, patient)
	}
	return patients
}

// referenceID strips the resource prefix from a FHIR reference
// ("Patient/abc" yields "abc").
func referenceID(reference string) string {
	for i := len(reference) - 1; i >= 0; i-- {
		if reference[i] == '/' {
			return reference[i+1:]
		}
	}
	return reference
}
