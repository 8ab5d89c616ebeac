package responses

import "arogya-service/internal/app/models"

// PatientResult is an operation outcome carrying its success flag, so that
// "already exists" and "not found" travel as results, not raised errors.
type PatientResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Patient *models.Patient `json:"patient,omitempty"`
}

type PatientList struct {
	Count    int               `json:"count"`
	Patients []*models.Patient `json:"patients"`
}

type DiseaseRecordResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
