package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Occupancy view messages
	GetBedLayoutSuccessMessage          = "get compartment layout successfully"
	GetAwaitingPatientsSuccessMessage   = "get awaiting patients successfully"
	GetAdmittedPatientsSuccessMessage   = "get admitted patients successfully"
	GetDischargedPatientsSuccessMessage = "get discharged patients successfully"

	// Queue messages
	GetQueueEntriesSuccessMessage   = "get queue entries successfully"
	ReleaseQueueEntrySuccessMessage = "queue entry released successfully"

	// Workflow messages
	AdmitPatientSuccessMessage     = "patient admitted successfully"
	DischargePatientSuccessMessage = "patient discharged successfully"
	DisposePatientSuccessMessage   = "body disposal recorded successfully"
	SwapCompartmentSuccessMessage  = "compartment swapped successfully"
	GetSagaSuccessMessage          = "get workflow run successfully"

	// Billing messages
	GetBillableServicesSuccessMessage = "get billable services successfully"
	SearchConceptsSuccessMessage      = "search concepts successfully"
	GetPatientBillsSuccessMessage     = "get patient bills successfully"

	// Report messages
	ComposeReportSuccessMessage = "report composed successfully"
)
