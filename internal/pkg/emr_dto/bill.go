package emr_dto

type BillableService struct {
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	ShortName     string  `json:"shortName,omitempty"`
	Price         float64 `json:"price"`
	ServiceStatus string  `json:"serviceStatus,omitempty"`
}

type BillableServiceList struct {
	Results []BillableService `json:"results"`
}

type PatientBill struct {
	UUID      string         `json:"uuid"`
	Patient   ResourceRef    `json:"patient"`
	Status    string         `json:"status"`
	Voided    bool           `json:"voided"`
	LineItems []BillLineItem `json:"lineItems"`
	Payments  []BillPayment  `json:"payments,omitempty"`
	Balance   float64        `json:"balance"`
	Total     float64        `json:"total"`
}

type BillLineItem struct {
	UUID            string  `json:"uuid"`
	BillableService string  `json:"billableService"`
	DisplayName     string  `json:"displayName,omitempty"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	PaymentStatus   string  `json:"paymentStatus,omitempty"`
}

type BillPayment struct {
	UUID           string  `json:"uuid"`
	Amount         float64 `json:"amount"`
	AmountTendered float64 `json:"amountTendered,omitempty"`
	Instance       string  `json:"instanceType,omitempty"`
}

type PatientBillList struct {
	Results []PatientBill `json:"results"`
	Total   int           `json:"totalCount,omitempty"`
}

type CreateBillRequest struct {
	Patient   string               `json:"patient"`
	CashPoint string               `json:"cashPoint,omitempty"`
	Status    string               `json:"status"`
	LineItems []CreateBillLineItem `json:"lineItems"`
}

type CreateBillLineItem struct {
	BillableService string  `json:"billableService"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	PaymentStatus   string  `json:"paymentStatus"`
}
