package analysis

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/shared/storage"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type analysisUsecase struct {
	Log                  *zap.Logger
	ModelClient          ModelClient
	SubmissionRepository SubmissionRepository
	PatientUsecase       patients.PatientUsecase
	Storage              storage.Storage
}

func NewAnalysisUsecase(
	logger *zap.Logger,
	modelClient ModelClient,
	submissionRepository SubmissionRepository,
	patientUsecase patients.PatientUsecase,
	storageService storage.Storage,
) AnalysisUsecase {
	return &analysisUsecase{
		Log:                  logger,
		ModelClient:          modelClient,
		SubmissionRepository: submissionRepository,
		PatientUsecase:       patientUsecase,
		Storage:              storageService,
	}
}

func (uc *analysisUsecase) AnalyzeImage(ctx context.Context, request *requests.AnalyzeImage) (*responses.AnalysisResponse, error) {
	// The upload is staged to a unique temp file for the lifetime of the
	// request and removed on every exit path.
	tempPath := filepath.Join(os.TempDir(), utils.GenerateTempFileName(request.FileExtension))
	if err := os.WriteFile(tempPath, request.FileData, 0o600); err != nil {
		return nil, exceptions.ErrFileSaveTemp(err)
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			uc.Log.Warn("temp file cleanup failed", zap.Error(err))
		}
	}()

	width, height := utils.DecodeImageDimensions(request.FileData)
	prompt := constvars.PromptForCategory(request.Category)
	mimeType := utils.ContentTypeForExtension(request.FileExtension)

	var result *models.AnalysisResult
	raw, modelErr := uc.ModelClient.GenerateAnalysis(ctx, prompt, request.FileData, mimeType)
	if modelErr != nil {
		// Upstream failures degrade into an error-flavored record rather
		// than failing the request.
		uc.Log.Error("model call failed",
			zap.String(constvars.LoggingCategoryKey, request.Category),
			zap.Error(modelErr),
		)
		result = ErrorResult(modelErr)
	} else {
		result = ParseModelResponse(raw, width, height)
	}

	submissionID := utils.GenerateSubmissionID()
	imageObject := uc.archiveImage(ctx, submissionID, request)

	var record *responses.DiseaseRecordResult
	if request.PatientName != "" && modelErr == nil {
		record = uc.recordDetection(ctx, request, result.Disease)
	}

	submission := &models.Submission{
		SubmissionID: submissionID,
		PatientName:  request.PatientName,
		Age:          request.Age,
		Category:     request.Category,
		Notes:        request.Notes,
		ImageObject:  imageObject,
		Disease:      result.Disease,
		Created:      time.Now().UTC(),
	}
	if err := uc.SubmissionRepository.InsertSubmission(ctx, submission); err != nil {
		return nil, err
	}

	uc.Log.Info("image analyzed",
		zap.String(constvars.LoggingCategoryKey, request.Category),
		zap.String(constvars.LoggingDiseaseKey, result.Disease),
	)
	return &responses.AnalysisResponse{
		SubmissionID: submissionID,
		Result:       result,
		Record:       record,
	}, nil
}

func (uc *analysisUsecase) ListSubmissions(ctx context.Context) (*responses.SubmissionList, error) {
	submissions, err := uc.SubmissionRepository.FindAllSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.SubmissionList{
		Count:       len(submissions),
		Submissions: submissions,
	}, nil
}

func (uc *analysisUsecase) GetSubmission(ctx context.Context, submissionID string) (*models.Submission, error) {
	return uc.SubmissionRepository.FindBySubmissionID(ctx, submissionID)
}

// archiveImage copies the upload to object storage. Archiving is best effort;
// a failure leaves the submission without an image reference.
func (uc *analysisUsecase) archiveImage(ctx context.Context, submissionID string, request *requests.AnalyzeImage) string {
	objectName := utils.GenerateObjectName("submissions", submissionID, request.FileExtension)
	contentType := utils.ContentTypeForExtension(request.FileExtension)
	if _, err := uc.Storage.UploadObject(ctx, objectName, request.FileData, contentType); err != nil {
		uc.Log.Warn("image archive failed", zap.Error(err))
		return ""
	}
	return objectName
}

// recordDetection ensures the patient exists and appends the detection to
// their record. Failures here do not fail the analysis; the outcome travels
// in the response alongside the result.
func (uc *analysisUsecase) recordDetection(ctx context.Context, request *requests.AnalyzeImage, disease string) *responses.DiseaseRecordResult {
	if _, _, err := uc.PatientUsecase.FindOrCreatePatient(ctx, request.PatientName, ""); err != nil {
		uc.Log.Warn("patient lookup failed during analysis",
			zap.String(constvars.LoggingUsernameKey, request.PatientName),
			zap.Error(err),
		)
		return &responses.DiseaseRecordResult{Success: false, Message: constvars.ErrClientSomethingWrongWithApplication}
	}

	record, err := uc.PatientUsecase.RecordDiseaseEvent(ctx, request.PatientName, &requests.RecordDisease{
		Disease:      disease,
		WorkerName:   request.WorkerName,
		WorkerAshaID: request.WorkerAshaID,
		WorkerMobile: request.WorkerMobile,
	})
	if err != nil {
		uc.Log.Warn("disease event record failed during analysis",
			zap.String(constvars.LoggingUsernameKey, request.PatientName),
			zap.Error(err),
		)
		return &responses.DiseaseRecordResult{Success: false, Message: constvars.ErrClientSomethingWrongWithApplication}
	}
	return record
}
