package emr_dto

type Encounter struct {
	UUID              string      `json:"uuid"`
	EncounterDatetime string      `json:"encounterDatetime"`
	EncounterType     ResourceRef `json:"encounterType"`
	Patient           ResourceRef `json:"patient"`
	Location          ResourceRef `json:"location,omitempty"`
	Visit             ResourceRef `json:"visit,omitempty"`
	Obs               []Obs       `json:"obs,omitempty"`
	Voided            bool        `json:"voided,omitempty"`
}

type EncounterList struct {
	Results []Encounter `json:"results"`
	Total   int         `json:"totalCount,omitempty"`
}

type CreateEncounterRequest struct {
	EncounterDatetime string             `json:"encounterDatetime"`
	EncounterType     string             `json:"encounterType"`
	Patient           string             `json:"patient"`
	Location          string             `json:"location"`
	Visit             string             `json:"visit,omitempty"`
	Obs               []CreateObsRequest `json:"obs,omitempty"`
	Diagnoses         []CreateDiagnosis  `json:"diagnoses,omitempty"`
}

type CreateDiagnosis struct {
	Diagnosis Diagnosis `json:"diagnosis"`
	Rank      int       `json:"rank"`
	Certainty string    `json:"certainty,omitempty"`
}

type Diagnosis struct {
	Coded string `json:"coded"`
}
