package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "apiKeyAuth"
)

// Patient stage discriminant. A patient holds exactly one stage at a time,
// derived from queue membership, bed occupancy, and discharge encounters.
const (
	StageAwaiting   = "awaiting"
	StageAdmitted   = "admitted"
	StageDischarged = "discharged"
)

// Severity tiers for time-in-mortuary emphasis.
const (
	SeverityTierHigh   = "high"
	SeverityTierMedium = "medium"
	SeverityTierLow    = "low"
)

const (
	SeverityDaysHighThreshold   = 7
	SeverityDaysMediumThreshold = 3
)

// Cache entity tags. Queries register the tags they read, mutations
// invalidate the tags they write.
const (
	CacheTagBeds       = "beds"
	CacheTagQueue      = "queue"
	CacheTagEncounters = "encounters"
	CacheTagVisits     = "visits"
	CacheTagBills      = "bills"
	CacheTagReports    = "reports"
)

const (
	WorkflowAdmit     = "admit"
	WorkflowDischarge = "discharge"
	WorkflowDispose   = "dispose"
	WorkflowSwap      = "swap"
)

const (
	SagaStatusRunning     = "running"
	SagaStatusCompleted   = "completed"
	SagaStatusCompensated = "compensated"
	SagaStatusFailed      = "failed"
)

const (
	SagaStepStatusDone                    = "done"
	SagaStepStatusFailed                  = "failed"
	SagaStepStatusCompensated             = "compensated"
	SagaStepStatusCompensationFailed      = "compensation_failed"
	SagaStepStatusCompensationUnsupported = "compensation_unsupported"
)

const (
	ReportTypeGatePass   = "gate-pass"
	ReportTypePostMortem = "post-mortem"
)

const (
	DefaultPage       = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
	FhirFetchPageSize = 100
)

// Idempotent EMR reads retry this many extra attempts on transport errors.
const EmrFetchRetryCount = 2

const AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
