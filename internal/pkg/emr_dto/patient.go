package emr_dto

type DeceasedPatient struct {
	UUID   string `json:"uuid"`
	Person Person `json:"person"`
}

type Person struct {
	UUID         string       `json:"uuid"`
	Display      string       `json:"display"`
	Gender       string       `json:"gender"`
	Age          int          `json:"age"`
	Dead         bool         `json:"dead"`
	DeathDate    string       `json:"deathDate,omitempty"`
	CauseOfDeath *ResourceRef `json:"causeOfDeath,omitempty"`
}

type DeceasedPatientList struct {
	Results []DeceasedPatient `json:"results"`
	Links   []Link            `json:"links,omitempty"`
	Total   int               `json:"totalCount,omitempty"`
}
