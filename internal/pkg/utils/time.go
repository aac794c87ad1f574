package utils

import (
	"mortuary-service/internal/pkg/constvars"
	"time"
)

const emrDatetimeLayout = "2006-01-02T15:04:05.000-0700"

var emrDatetimeLayouts = []string{
	emrDatetimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEmrDatetime tries the datetime layouts the EMR is known to emit.
func ParseEmrDatetime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range emrDatetimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func FormatEmrDatetime(t time.Time) string {
	return t.Format(emrDatetimeLayout)
}

// DaysSince is the whole-day count between a past instant and now.
// Missing or future inputs yield 0.
func DaysSince(value string, now time.Time) int {
	parsed, ok := ParseEmrDatetime(value)
	if !ok {
		return 0
	}
	if parsed.After(now) {
		return 0
	}
	return int(now.Sub(parsed).Hours() / 24)
}

func DaysInMortuary(deathDate string, now time.Time) int {
	return DaysSince(deathDate, now)
}

func DaysInQueue(queuedAt string, now time.Time) int {
	return DaysSince(queuedAt, now)
}

// LengthOfStay counts days since the visit started; without an active visit
// it falls back to the death date.
func LengthOfStay(visitStart, deathDate string, now time.Time) int {
	if visitStart != "" {
		return DaysSince(visitStart, now)
	}
	return DaysSince(deathDate, now)
}

// SeverityTier classifies a day count for visual emphasis only.
func SeverityTier(days int) string {
	switch {
	case days > constvars.SeverityDaysHighThreshold:
		return constvars.SeverityTierHigh
	case days > constvars.SeverityDaysMediumThreshold:
		return constvars.SeverityTierMedium
	default:
		return constvars.SeverityTierLow
	}
}
