package utils

import (
	"mortuary-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesTerm(t *testing.T) {
	t.Run("Case Insensitive", func(t *testing.T) {
		assert.True(t, MatchesTerm("JOHN", "John Otieno"), "match should ignore case")
		assert.True(t, MatchesTerm("otie", "John Otieno"), "substring should match")
	})

	t.Run("Empty Term Matches Everything", func(t *testing.T) {
		assert.True(t, MatchesTerm("", "anything"))
		assert.True(t, MatchesTerm(""))
	})

	t.Run("No Match", func(t *testing.T) {
		assert.False(t, MatchesTerm("xyz", "John Otieno", "male"))
	})
}

func TestFilterMortuaryPatients(t *testing.T) {
	patients := []responses.MortuaryPatient{
		{Name: "John Otieno", PatientUUID: "uuid-1", Gender: "M", CauseOfDeath: "Cardiac arrest", BedNumber: "MB-01", BedType: "Freezer"},
		{Name: "Mary Wanjiku", PatientUUID: "uuid-2", Gender: "F", CauseOfDeath: "Road traffic accident", BedNumber: "MB-02", BedType: "Tray"},
	}

	t.Run("Matches By Name", func(t *testing.T) {
		filtered := FilterMortuaryPatients(patients, "wanjiku")
		assert.Len(t, filtered, 1)
		assert.Equal(t, "uuid-2", filtered[0].PatientUUID)
	})

	t.Run("Matches By Cause Of Death", func(t *testing.T) {
		filtered := FilterMortuaryPatients(patients, "cardiac")
		assert.Len(t, filtered, 1)
		assert.Equal(t, "uuid-1", filtered[0].PatientUUID)
	})

	t.Run("Matches By Bed Number", func(t *testing.T) {
		filtered := FilterMortuaryPatients(patients, "mb-02")
		assert.Len(t, filtered, 1)
		assert.Equal(t, "uuid-2", filtered[0].PatientUUID)
	})

	t.Run("Blank Term Returns Input", func(t *testing.T) {
		filtered := FilterMortuaryPatients(patients, "   ")
		assert.Len(t, filtered, 2, "whitespace-only term should not filter")
	})

	t.Run("No Match Returns Empty Slice", func(t *testing.T) {
		filtered := FilterMortuaryPatients(patients, "nobody")
		assert.NotNil(t, filtered)
		assert.Len(t, filtered, 0)
	})
}

func TestFilterBedCards(t *testing.T) {
	beds := []responses.BedCard{
		{BedNumber: "MB-01", BedType: "Freezer", Status: "OCCUPIED", Occupants: []responses.MortuaryPatient{{Name: "John Otieno", PatientUUID: "uuid-1"}}},
		{BedNumber: "MB-02", BedType: "Tray", Status: "AVAILABLE", Occupants: []responses.MortuaryPatient{}},
	}

	t.Run("Matches By Occupant Name", func(t *testing.T) {
		filtered := FilterBedCards(beds, "otieno")
		assert.Len(t, filtered, 1)
		assert.Equal(t, "MB-01", filtered[0].BedNumber)
	})

	t.Run("Matches By Status", func(t *testing.T) {
		filtered := FilterBedCards(beds, "available")
		assert.Len(t, filtered, 1)
		assert.Equal(t, "MB-02", filtered[0].BedNumber)
	})

	t.Run("Blank Term Returns Input", func(t *testing.T) {
		assert.Len(t, FilterBedCards(beds, ""), 2)
	})
}
