package requests

type ReleaseQueueEntryRequest struct {
	EndedAt string `json:"endedAt" validate:"omitempty"`
	Reason  string `json:"reason" validate:"omitempty,max=255"`
}
