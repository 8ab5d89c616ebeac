package analysis

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type AnalysisUsecase interface {
	AnalyzeImage(ctx context.Context, request *requests.AnalyzeImage) (*responses.AnalysisResponse, error)
	ListSubmissions(ctx context.Context) (*responses.SubmissionList, error)
	GetSubmission(ctx context.Context, submissionID string) (*models.Submission, error)
}

// ModelClient is the boundary to the hosted vision model. It returns the raw
// free-text response; parsing it is the caller's concern.
type ModelClient interface {
	GenerateAnalysis(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
}

type SubmissionRepository interface {
	InsertSubmission(ctx context.Context, submission *models.Submission) error
	FindAllSubmissions(ctx context.Context) ([]*models.Submission, error)
	FindBySubmissionID(ctx context.Context, submissionID string) (*models.Submission, error)
}
