package emr_dto

type Visit struct {
	UUID          string      `json:"uuid"`
	Patient       ResourceRef `json:"patient"`
	VisitType     ResourceRef `json:"visitType,omitempty"`
	Location      ResourceRef `json:"location,omitempty"`
	StartDatetime string      `json:"startDatetime"`
	StopDatetime  string      `json:"stopDatetime,omitempty"`
}

type VisitList struct {
	Results []Visit `json:"results"`
	Total   int     `json:"totalCount,omitempty"`
}

type CreateVisitRequest struct {
	Patient       string `json:"patient"`
	VisitType     string `json:"visitType"`
	Location      string `json:"location"`
	StartDatetime string `json:"startDatetime"`
}

type UpdateVisitRequest struct {
	StopDatetime string `json:"stopDatetime"`
}
