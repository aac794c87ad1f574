package responses

type PatientBillSummary struct {
	BillUUID string  `json:"billUuid"`
	Status   string  `json:"status"`
	Voided   bool    `json:"voided"`
	Total    float64 `json:"total"`
	Balance  float64 `json:"balance"`
}

type PendingBillCheck struct {
	Blocked     bool                 `json:"blocked"`
	Outstanding float64              `json:"outstanding"`
	Bills       []PatientBillSummary `json:"bills"`
}

type BillableServiceItem struct {
	UUID      string  `json:"uuid"`
	Name      string  `json:"name"`
	ShortName string  `json:"shortName,omitempty"`
	Price     float64 `json:"price"`
}
