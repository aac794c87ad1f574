package requests

type ObservationInput struct {
	ConceptUUID string      `json:"conceptUuid" validate:"required,uuid4"`
	Value       interface{} `json:"value" validate:"required"`
}

type BillLineItemInput struct {
	BillableServiceUUID string  `json:"billableServiceUuid" validate:"required,uuid4"`
	Quantity            int     `json:"quantity" validate:"required,gte=1"`
	Price               float64 `json:"price" validate:"gte=0"`
}

type AdmitPatientRequest struct {
	PatientUUID    string              `json:"patientUuid" validate:"required,uuid4"`
	BedID          int                 `json:"bedId" validate:"required,gte=1"`
	QueueEntryUUID string              `json:"queueEntryUuid" validate:"omitempty,uuid4"`
	VisitTypeUUID  string              `json:"visitTypeUuid" validate:"required,uuid4"`
	LineItems      []BillLineItemInput `json:"lineItems" validate:"omitempty,dive"`
	Observations   []ObservationInput  `json:"observations" validate:"omitempty,dive"`
}

type DischargePatientRequest struct {
	PatientUUID    string             `json:"patientUuid" validate:"required,uuid4"`
	BedID          int                `json:"bedId" validate:"required,gte=1"`
	VisitUUID      string             `json:"visitUuid" validate:"required,uuid4"`
	QueueEntryUUID string             `json:"queueEntryUuid" validate:"omitempty,uuid4"`
	Observations   []ObservationInput `json:"observations" validate:"omitempty,dive"`
}

type DisposePatientRequest struct {
	PatientUUID      string             `json:"patientUuid" validate:"required,uuid4"`
	BedID            int                `json:"bedId" validate:"required,gte=1"`
	VisitUUID        string             `json:"visitUuid" validate:"required,uuid4"`
	QueueEntryUUID   string             `json:"queueEntryUuid" validate:"omitempty,uuid4"`
	DisposalMethod   string             `json:"disposalMethod" validate:"required"`
	NextOfKinName    string             `json:"nextOfKinName" validate:"omitempty,min=2"`
	NextOfKinPhone   string             `json:"nextOfKinPhone" validate:"omitempty,min=7"`
	CourtOrderNumber string             `json:"courtOrderNumber" validate:"omitempty"`
	Observations     []ObservationInput `json:"observations" validate:"omitempty,dive"`
}

type SwapCompartmentRequest struct {
	PatientUUID  string `json:"patientUuid" validate:"required,uuid4"`
	CurrentBedID int    `json:"currentBedId" validate:"required,gte=1"`
	// NewBedID of 0 means unassign from the current compartment.
	NewBedID int `json:"newBedId" validate:"gte=0"`
}
