package emr_dto

type Obs struct {
	UUID        string      `json:"uuid"`
	Concept     ResourceRef `json:"concept"`
	Value       interface{} `json:"value,omitempty"`
	ObsDatetime string      `json:"obsDatetime,omitempty"`
}

type ObsList struct {
	Results []Obs `json:"results"`
}

type CreateObsRequest struct {
	Concept     string      `json:"concept"`
	Value       interface{} `json:"value"`
	ObsDatetime string      `json:"obsDatetime,omitempty"`
}
