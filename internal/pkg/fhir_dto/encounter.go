package fhir_dto

type Encounter struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Meta         *Meta             `json:"meta,omitempty"`
	Status       string            `json:"status,omitempty"`
	Class        *Coding           `json:"class,omitempty"`
	Type         []CodeableConcept `json:"type,omitempty"`
	Subject      Reference         `json:"subject"`
	Period       *Period           `json:"period,omitempty"`
	Location     []EncounterLoc    `json:"location,omitempty"`
}

type EncounterLoc struct {
	Location Reference `json:"location"`
}
