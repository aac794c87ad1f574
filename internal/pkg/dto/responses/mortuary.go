package responses

// MortuaryPatient is the single tagged-variant patient representation used by
// every view. Stage is the explicit discriminant; the stage-specific fields
// are populated only for the matching stage.
type MortuaryPatient struct {
	Stage        string `json:"stage"`
	PatientUUID  string `json:"patientUuid"`
	PersonUUID   string `json:"personUuid,omitempty"`
	Name         string `json:"name"`
	Gender       string `json:"gender,omitempty"`
	Age          int    `json:"age,omitempty"`
	CauseOfDeath string `json:"causeOfDeath,omitempty"`
	DeathDate    string `json:"deathDate,omitempty"`

	DaysInMortuary int    `json:"daysInMortuary"`
	SeverityTier   string `json:"severityTier"`

	// awaiting
	QueueEntryUUID string `json:"queueEntryUuid,omitempty"`
	QueuedAt       string `json:"queuedAt,omitempty"`
	DaysInQueue    int    `json:"daysInQueue,omitempty"`

	// admitted
	BedID            int    `json:"bedId,omitempty"`
	BedNumber        string `json:"bedNumber,omitempty"`
	BedType          string `json:"bedType,omitempty"`
	VisitUUID        string `json:"visitUuid,omitempty"`
	AdmittedAt       string `json:"admittedAt,omitempty"`
	LengthOfStayDays int    `json:"lengthOfStayDays,omitempty"`

	// discharged
	DischargedAt string `json:"dischargedAt,omitempty"`
}
