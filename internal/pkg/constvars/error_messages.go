package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"numeric":     "must be a number",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"uuid":        "must be a valid UUID",
	"uuid4":       "must be a valid UUID",
	"datetime":    "must be a valid date",
	"not_future":  "must not be in the future",
	"emr_uuid":    "must be a valid EMR resource id",
	"report_type": "must be either 'gate-pass' or 'post-mortem'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEMRUnreachable                = "the medical record system is not responding"
	ErrClientPatientNotFound               = "deceased patient record not found"
	ErrClientBedNotFound                   = "compartment not found"
	ErrClientBedOccupied                   = "compartment is already occupied"
	ErrClientQueueEntryNotFound            = "queue entry not found"
	ErrClientPendingBills                  = "patient has unpaid bills, settle them before releasing the body"
	ErrClientNoAutopsyEncounter            = "no completed post-mortem examination found for this patient"
	ErrClientWorkflowFailed                = "the action could not be completed, earlier steps were rolled back"
	ErrClientReportNotFound                = "report not found"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON   = "cannot parse JSON"
	ErrDevCannotMarshalJSON = "cannot marshal JSON"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevReadResponseBody  = "failed to read response body"
	ErrDevValidationFailed  = "validation failed"
	ErrDevCannotParseTime   = "cannot parse time value"

	// EMR client messages
	ErrDevEmrCreateResource  = "failed to create %s on EMR"
	ErrDevEmrUpdateResource  = "failed to update %s on EMR"
	ErrDevEmrDeleteResource  = "failed to delete %s on EMR"
	ErrDevEmrGetResource     = "failed to get %s from EMR"
	ErrDevEmrDecodeResponse  = "failed to decode %s response from EMR"
	ErrDevFhirSearchResource = "failed to search FHIR %s"

	// Authentication messages
	ErrDevAuthSigningMethod        = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissing         = "token missing"
	ErrDevAuthInvalidAPIKey        = "invalid superadmin api key"

	// Workflow messages
	ErrDevWorkflowStepFailed       = "workflow step failed"
	ErrDevPendingBillsBlockRelease = "pending bills block release"
	ErrDevSagaPersistFailed        = "failed to persist saga document"
	ErrDevSagaNotFound             = "saga document not found"

	// Driver messages
	ErrDevRedisSet        = "failed to set redis key"
	ErrDevRedisGet        = "failed to get redis key"
	ErrDevRedisDelete     = "failed to delete redis key"
	ErrDevRedisAddToSet   = "failed to add members to redis set"
	ErrDevRedisGetMembers = "failed to get redis set members"
	ErrDevMongoInsert     = "failed to insert mongo document"
	ErrDevMongoUpdate     = "failed to update mongo document"
	ErrDevMongoFind       = "failed to find mongo document"
	ErrDevMinioPutObject  = "failed to put object to bucket %s"
	ErrDevAmqpPublish     = "failed to publish message to queue"
)
