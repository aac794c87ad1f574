package emr_dto

type Concept struct {
	UUID    string `json:"uuid"`
	Display string `json:"display"`
}

type ConceptList struct {
	Results []Concept `json:"results"`
}
