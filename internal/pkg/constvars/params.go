package constvars

const (
	URLParamPatientID = "patientID"
	URLParamBedID     = "bedID"
	URLParamQueueID   = "queueID"
	URLParamSagaID    = "sagaID"
)

const (
	QueryParamPage     = "page"
	QueryParamPageSize = "pageSize"
	QueryParamSearch   = "search"
	QueryParamQuery    = "q"
	QueryParamLocation = "location"
)
