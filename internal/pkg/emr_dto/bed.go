package emr_dto

type BedAssignment struct {
	UUID      string      `json:"uuid"`
	Bed       ResourceRef `json:"bed"`
	Patient   ResourceRef `json:"patient"`
	Encounter ResourceRef `json:"encounter,omitempty"`
}

type AssignBedRequest struct {
	PatientUUID   string `json:"patientUuid"`
	EncounterUUID string `json:"encounterUuid"`
}

type OperationOutcome struct {
	Error OperationOutcomeError `json:"error"`
}

type OperationOutcomeError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
