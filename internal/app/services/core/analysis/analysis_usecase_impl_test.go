package analysis

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeModelClient struct {
	response string
	err      error
}

func (f *fakeModelClient) GenerateAnalysis(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	return f.response, f.err
}

type fakeSubmissionRepository struct {
	submissions []*models.Submission
}

func (f *fakeSubmissionRepository) InsertSubmission(ctx context.Context, submission *models.Submission) error {
	f.submissions = append(f.submissions, submission)
	return nil
}

func (f *fakeSubmissionRepository) FindAllSubmissions(ctx context.Context) ([]*models.Submission, error) {
	return f.submissions, nil
}

func (f *fakeSubmissionRepository) FindBySubmissionID(ctx context.Context, submissionID string) (*models.Submission, error) {
	for _, submission := range f.submissions {
		if submission.SubmissionID == submissionID {
			return submission, nil
		}
	}
	return nil, nil
}

type fakePatientUsecase struct {
	knownPatients map[string]bool
	recorded      []string
}

func (f *fakePatientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error) {
	return nil, errors.New("not used")
}

func (f *fakePatientUsecase) FindOrCreatePatient(ctx context.Context, username, phone string) (*models.Patient, bool, error) {
	created := !f.knownPatients[username]
	f.knownPatients[username] = true
	return &models.Patient{Username: username}, created, nil
}

func (f *fakePatientUsecase) SearchPatient(ctx context.Context, request *requests.SearchPatient) ([]*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientUsecase) RecordDiseaseEvent(ctx context.Context, username string, request *requests.RecordDisease) (*responses.DiseaseRecordResult, error) {
	f.recorded = append(f.recorded, fmt.Sprintf("%s:%s", username, request.Disease))
	return &responses.DiseaseRecordResult{
		Success: true,
		Message: fmt.Sprintf("added disease '%s' for %s", request.Disease, username),
	}, nil
}

type fakeStorage struct {
	uploaded map[string][]byte
}

func (f *fakeStorage) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if f.uploaded == nil {
		f.uploaded = make(map[string][]byte)
	}
	f.uploaded[objectName] = data
	return objectName, nil
}

func analyzeRequest() *requests.AnalyzeImage {
	return &requests.AnalyzeImage{
		Category:      "skin",
		PatientName:   "Asha",
		Age:           "34",
		Notes:         "itchy patch on forearm",
		FileName:      "lesion.jpg",
		FileExtension: ".jpg",
		FileData:      []byte{0xFF, 0xD8, 0xFF, 0xDB},
	}
}

func TestAnalyzeImage(t *testing.T) {
	modelResponse := `{"Disease name": "Acne", "Confidence level": 82, "Severity level": "Mild", "List of recommended treatments": ["Benzoyl peroxide"]}`

	t.Run("Successful analysis records the detection and archives", func(t *testing.T) {
		submissionRepo := &fakeSubmissionRepository{}
		patientUc := &fakePatientUsecase{knownPatients: make(map[string]bool)}
		archive := &fakeStorage{}
		uc := NewAnalysisUsecase(zap.NewNop(), &fakeModelClient{response: modelResponse}, submissionRepo, patientUc, archive)

		response, err := uc.AnalyzeImage(context.Background(), analyzeRequest())
		assert.NoError(t, err)
		assert.NotEmpty(t, response.SubmissionID)
		assert.Equal(t, "Acne", response.Result.Disease)
		assert.Equal(t, 82, response.Result.Confidence)

		assert.NotNil(t, response.Record)
		assert.True(t, response.Record.Success)
		assert.Equal(t, []string{"Asha:Acne"}, patientUc.recorded)

		assert.Len(t, submissionRepo.submissions, 1)
		submission := submissionRepo.submissions[0]
		assert.Equal(t, "Acne", submission.Disease)
		assert.Equal(t, "skin", submission.Category)
		assert.NotEmpty(t, submission.ImageObject)
		assert.Contains(t, archive.uploaded, submission.ImageObject)
	})

	t.Run("Anonymous submission skips patient recording", func(t *testing.T) {
		submissionRepo := &fakeSubmissionRepository{}
		patientUc := &fakePatientUsecase{knownPatients: make(map[string]bool)}
		uc := NewAnalysisUsecase(zap.NewNop(), &fakeModelClient{response: modelResponse}, submissionRepo, patientUc, &fakeStorage{})

		request := analyzeRequest()
		request.PatientName = ""
		response, err := uc.AnalyzeImage(context.Background(), request)
		assert.NoError(t, err)
		assert.Nil(t, response.Record)
		assert.Empty(t, patientUc.recorded)
		assert.Len(t, submissionRepo.submissions, 1)
	})

	t.Run("Model failure degrades into an error record", func(t *testing.T) {
		submissionRepo := &fakeSubmissionRepository{}
		patientUc := &fakePatientUsecase{knownPatients: make(map[string]bool)}
		uc := NewAnalysisUsecase(zap.NewNop(), &fakeModelClient{err: errors.New("model unavailable")}, submissionRepo, patientUc, &fakeStorage{})

		response, err := uc.AnalyzeImage(context.Background(), analyzeRequest())
		assert.NoError(t, err, "upstream failure must not fail the request")
		assert.Equal(t, "Error", response.Result.Disease)
		assert.Contains(t, response.Result.Description, "model unavailable")
		assert.Empty(t, patientUc.recorded, "an error record is never written to the patient")
		assert.Len(t, submissionRepo.submissions, 1)
	})
}

func TestListAndGetSubmissions(t *testing.T) {
	submissionRepo := &fakeSubmissionRepository{}
	patientUc := &fakePatientUsecase{knownPatients: make(map[string]bool)}
	uc := NewAnalysisUsecase(zap.NewNop(), &fakeModelClient{response: "{}"}, submissionRepo, patientUc, &fakeStorage{})
	ctx := context.Background()

	response, err := uc.AnalyzeImage(ctx, analyzeRequest())
	assert.NoError(t, err)

	list, err := uc.ListSubmissions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, list.Count)

	found, err := uc.GetSubmission(ctx, response.SubmissionID)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, response.SubmissionID, found.SubmissionID)

	missing, err := uc.GetSubmission(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
