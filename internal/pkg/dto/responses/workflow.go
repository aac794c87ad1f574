package responses

type SagaStepResult struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	ResourceID string `json:"resourceId,omitempty"`
	Error      string `json:"error,omitempty"`
}

type ConceptItem struct {
	UUID    string `json:"uuid"`
	Display string `json:"display"`
}

type WorkflowResult struct {
	SagaID        string           `json:"sagaId"`
	Workflow      string           `json:"workflow"`
	Status        string           `json:"status"`
	PatientUUID   string           `json:"patientUuid"`
	EncounterUUID string           `json:"encounterUuid,omitempty"`
	VisitUUID     string           `json:"visitUuid,omitempty"`
	BillUUID      string           `json:"billUuid,omitempty"`
	BedUUID       string           `json:"bedUuid,omitempty"`
	Steps         []SagaStepResult `json:"steps"`
}
