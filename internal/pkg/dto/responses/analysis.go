package responses

import "arogya-service/internal/app/models"

type AnalysisResponse struct {
	SubmissionID string                 `json:"submission_id"`
	Result       *models.AnalysisResult `json:"result"`
	Record       *DiseaseRecordResult   `json:"record,omitempty"`
}

type SubmissionList struct {
	Count       int                  `json:"count"`
	Submissions []*models.Submission `json:"submissions"`
}
