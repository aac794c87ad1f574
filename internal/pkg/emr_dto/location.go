package emr_dto

// AdmissionLocation is the bed-management projection of a mortuary ward:
// the ward reference plus the full compartment grid with occupant lists.
type AdmissionLocation struct {
	Ward         ResourceRef `json:"ward"`
	TotalBeds    int         `json:"totalBeds"`
	OccupiedBeds int         `json:"occupiedBeds"`
	BedLayouts   []BedLayout `json:"bedLayouts"`
}

type BedLayout struct {
	RowNumber    int               `json:"rowNumber"`
	ColumnNumber int               `json:"columnNumber"`
	BedID        int               `json:"bedId"`
	BedUUID      string            `json:"bedUuid"`
	BedNumber    string            `json:"bedNumber"`
	BedType      *BedType          `json:"bedType,omitempty"`
	Status       string            `json:"status,omitempty"`
	Patients     []DeceasedPatient `json:"patients"`
}

type BedType struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

type AdmissionLocationList struct {
	Results []AdmissionLocation `json:"results"`
}
