package models

import "time"

// Saga is the persisted ledger of one workflow run. Every executed step and
// every compensation outcome is recorded before the run returns to the caller.
type Saga struct {
	ID          string     `bson:"_id"`
	Workflow    string     `bson:"workflow"`
	PatientUUID string     `bson:"patientUuid"`
	LocationID  string     `bson:"locationUuid,omitempty"`
	Status      string     `bson:"status"`
	Steps       []SagaStep `bson:"steps"`
	StartedAt   time.Time  `bson:"startedAt"`
	FinishedAt  *time.Time `bson:"finishedAt,omitempty"`
	FailureNote string     `bson:"failureNote,omitempty"`
}

type SagaStep struct {
	Name        string     `bson:"name"`
	Status      string     `bson:"status"`
	ResourceID  string     `bson:"resourceId,omitempty"`
	Error       string     `bson:"error,omitempty"`
	ExecutedAt  time.Time  `bson:"executedAt"`
	Compensated *time.Time `bson:"compensatedAt,omitempty"`
}
