package responses

type BedCard struct {
	BedID         int               `json:"bedId"`
	BedUUID       string            `json:"bedUuid"`
	BedNumber     string            `json:"bedNumber"`
	BedType       string            `json:"bedType"`
	Status        string            `json:"status"`
	Shared        bool              `json:"shared"`
	OccupantCount int               `json:"occupantCount"`
	Occupants     []MortuaryPatient `json:"occupants"`
}

type BedLayoutResponse struct {
	WardUUID     string    `json:"wardUuid"`
	WardName     string    `json:"wardName"`
	TotalBeds    int       `json:"totalBeds"`
	OccupiedBeds int       `json:"occupiedBeds"`
	Beds         []BedCard `json:"beds"`
}
