package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingPatientIDKey   = "patient_id"
	LoggingVisitIDKey     = "visit_id"
	LoggingEncounterIDKey = "encounter_id"
	LoggingBedIDKey       = "bed_id"
	LoggingLocationIDKey  = "location_id"
	LoggingSagaIDKey      = "saga_id"
	LoggingWorkflowKey    = "workflow"
	LoggingStepKey        = "step"
	LoggingReportTypeKey  = "report_type"
	LoggingObjectNameKey  = "object_name"
	LoggingCacheKeyKey    = "cache_key"
	LoggingCacheTagKey    = "cache_tag"
)
