package emr_dto

type QueueEntry struct {
	UUID      string      `json:"uuid"`
	Patient   ResourceRef `json:"patient"`
	Status    string      `json:"status"`
	StartedAt string      `json:"startedAt"`
	EndedAt   string      `json:"endedAt,omitempty"`
}

type QueueEntryList struct {
	Results []QueueEntry `json:"results"`
	Total   int          `json:"totalCount,omitempty"`
}

type CreateQueueEntryRequest struct {
	Patient   string `json:"patient"`
	StartedAt string `json:"startedAt"`
}

type CloseQueueEntryRequest struct {
	Status  string `json:"status"`
	EndedAt string `json:"endedAt"`
}
