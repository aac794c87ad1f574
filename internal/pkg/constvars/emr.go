package constvars

// EMR REST resource paths, relative to the EMR base URL.
const (
	EmrResourcePatient         = "/patient"
	EmrResourcePerson          = "/person"
	EmrResourceVisit           = "/visit"
	EmrResourceEncounter       = "/encounter"
	EmrResourceAdmissionLoc    = "/admissionLocation"
	EmrResourceBed             = "/beds"
	EmrResourceBedAssignment   = "/bedPatientAssignment"
	EmrResourceQueueEntry      = "/queue-entry"
	EmrResourceBillableService = "/billableService"
	EmrResourcePatientBill     = "/patientBill"
	EmrResourceObservation     = "/obs"
	EmrResourceConcept         = "/concept"
)

// Encounter type display names used by the mortuary workflows.
const (
	EncounterTypeAdmission     = "Mortuary Admission"
	EncounterTypeDischarge     = "Mortuary Discharge"
	EncounterTypeDisposal      = "Mortuary Disposal"
	EncounterTypeBedAssignment = "Mortuary Bed Assignment"
	EncounterTypeAutopsy       = "Post-mortem Examination"
)

const (
	BedStatusAvailable = "AVAILABLE"
	BedStatusOccupied  = "OCCUPIED"
)

const (
	BillStatusPending = "PENDING"
	BillStatusPaid    = "PAID"
	BillStatusVoided  = "VOIDED"
)

const (
	QueueEntryStatusActive = "active"
	QueueEntryStatusEnded  = "ended"
)

// Person attribute type names written by the disposal workflow.
const (
	PersonAttributeNextOfKinName    = "Next of Kin Name"
	PersonAttributeNextOfKinPhone   = "Next of Kin Phone"
	PersonAttributeCourtOrderNumber = "Court Order Number"
)

// Custom field projections for EMR queries.
const (
	EmrProjectionDeceasedPatient = "custom:(uuid,person:(uuid,display,gender,age,dead,deathDate,causeOfDeath:(display)))"
	EmrProjectionVisit           = "custom:(uuid,patient:(uuid),startDatetime,stopDatetime,location:(uuid,display))"
	EmrProjectionQueueEntry      = "custom:(uuid,patient:(uuid,display),status,startedAt,endedAt)"
)

const DefaultBedTypeDisplay = "Unknown compartment type"
