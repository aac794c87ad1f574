package utils

import (
	"mortuary-service/internal/pkg/dto/responses"
	"strings"
)

// MatchesTerm reports whether any field contains term, case-insensitively.
// An empty term matches everything.
func MatchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// FilterMortuaryPatients applies the view search predicate over the fixed
// field set: name, id, gender, cause of death, bed number and type.
// An empty term returns the input unchanged.
func FilterMortuaryPatients(patients []responses.MortuaryPatient, term string) []responses.MortuaryPatient {
	if strings.TrimSpace(term) == "" {
		return patients
	}
	filtered := []responses.MortuaryPatient{}
	for _, patient := range patients {
		if MatchesTerm(term,
			patient.Name,
			patient.PatientUUID,
			patient.Gender,
			patient.CauseOfDeath,
			patient.BedNumber,
			patient.BedType,
		) {
			filtered = append(filtered, patient)
		}
	}
	return filtered
}

// FilterBedCards matches against bed number, type, status and occupant names.
func FilterBedCards(beds []responses.BedCard, term string) []responses.BedCard {
	if strings.TrimSpace(term) == "" {
		return beds
	}
	filtered := []responses.BedCard{}
	for _, bed := range beds {
		fields := []string{bed.BedNumber, bed.BedType, bed.Status}
		for _, occupant := range bed.Occupants {
			fields = append(fields, occupant.Name, occupant.PatientUUID)
		}
		if MatchesTerm(term, fields...) {
			filtered = append(filtered, bed)
		}
	}
	return filtered
}
