package models

import "time"

// Patient is the intake record for one person, keyed by username.
// The diseases array only ever grows; events are deduplicated on the full
// (name, detected_at, checked_by) document by the repository.
type Patient struct {
	ID       string         `json:"-" bson:"_id,omitempty"`
	Username string         `json:"username" bson:"username"`
	Phone    string         `json:"phone" bson:"phone"`
	Diseases []DiseaseEvent `json:"diseases" bson:"diseases"`
	Created  time.Time      `json:"created" bson:"created"`
}

// DiseaseEvent is one detection appended to a patient's record. CheckedBy is
// a snapshot of the reporting worker at event time, not a live reference.
type DiseaseEvent struct {
	Name       string             `json:"name" bson:"name"`
	DetectedAt time.Time          `json:"detected_at" bson:"detected_at"`
	CheckedBy  *WorkerAttribution `json:"checked_by,omitempty" bson:"checked_by,omitempty"`
}

type WorkerAttribution struct {
	Name   string `json:"name" bson:"name"`
	AshaID string `json:"asha_id" bson:"asha_id"`
	Mobile string `json:"mobile" bson:"mobile"`
}
