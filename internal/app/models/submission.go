package models

import "time"

// Submission is the condensed archive entry written for every intake request.
// The full AnalysisResult is intentionally not persisted.
type Submission struct {
	ID           string    `json:"-" bson:"_id,omitempty"`
	SubmissionID string    `json:"submission_id" bson:"submission_id"`
	PatientName  string    `json:"patient_name" bson:"patient_name"`
	Age          string    `json:"age" bson:"age"`
	Category     string    `json:"category" bson:"category"`
	Notes        string    `json:"notes" bson:"notes"`
	ImageObject  string    `json:"image_object" bson:"image_object"`
	Disease      string    `json:"disease" bson:"disease"`
	Created      time.Time `json:"created" bson:"created"`
}
