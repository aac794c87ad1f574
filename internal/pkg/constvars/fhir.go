package constvars

const (
	ResourcePatient     = "Patient"
	ResourceEncounter   = "Encounter"
	ResourceLocation    = "Location"
	ResourceObservation = "Observation"
)

const (
	FhirParamEncounterType = "type"
	FhirParamLocation      = "location"
	FhirParamCount         = "_count"
	FhirParamPagesOffset   = "_getpagesoffset"
)

const (
	FhirBundleTypeSearchset = "searchset"
)
