package models

import "time"

// MortuaryEvent is the message published after a workflow run commits.
type MortuaryEvent struct {
	EventID      string            `json:"event_id"`
	Type         string            `json:"type"`
	SagaID       string            `json:"saga_id"`
	PatientUUID  string            `json:"patient_uuid"`
	LocationUUID string            `json:"location_uuid,omitempty"`
	OccurredAt   time.Time         `json:"occurred_at"`
	Details      map[string]string `json:"details,omitempty"`
}
