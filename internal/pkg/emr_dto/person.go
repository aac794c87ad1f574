package emr_dto

type PersonAttribute struct {
	UUID          string      `json:"uuid"`
	AttributeType ResourceRef `json:"attributeType"`
	Value         string      `json:"value"`
}

type PersonAttributeList struct {
	Results []PersonAttribute `json:"results"`
}

type CreatePersonAttributeRequest struct {
	AttributeType string `json:"attributeType"`
	Value         string `json:"value"`
}
