package analysis

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AnalysisController struct {
	Log             *zap.Logger
	AnalysisUsecase AnalysisUsecase
	InternalConfig  *config.InternalConfig
}

func NewAnalysisController(logger *zap.Logger, analysisUsecase AnalysisUsecase, internalConfig *config.InternalConfig) *AnalysisController {
	return &AnalysisController{
		Log:             logger,
		AnalysisUsecase: analysisUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *AnalysisController) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	maxSize := ctrl.InternalConfig.App.UploadMaxSizeInMB
	if err := r.ParseMultipartForm(maxSize << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNoFileProvided(err))
		return
	}
	defer file.Close()

	if err := utils.ValidateImageExtension(header.Filename, constvars.ImageAllowedUploadExtensions); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	fileData, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(err))
		return
	}
	if err := utils.ValidateImageSize(fileData, maxSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageTooLarge(err))
		return
	}

	request := &requests.AnalyzeImage{
		Category:      r.FormValue("category"),
		PatientName:   r.FormValue("patient_name"),
		Age:           r.FormValue("age"),
		Notes:         r.FormValue("notes"),
		WorkerName:    r.FormValue("worker_name"),
		WorkerAshaID:  r.FormValue("worker_asha_id"),
		WorkerMobile:  r.FormValue("worker_mobile"),
		FileName:      header.Filename,
		FileExtension: strings.ToLower(filepath.Ext(header.Filename)),
		FileData:      fileData,
	}
	utils.SanitizeAnalyzeImageRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// The model call dominates latency; the deadline leaves room for its
	// internal timeout plus one retry.
	timeout := time.Duration(2*ctrl.InternalConfig.Gemini.TimeoutInSeconds+10) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.AnalysisUsecase.AnalyzeImage(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalysisSuccess, response)
}

func (ctrl *AnalysisController) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	submissions, err := ctrl.AnalysisUsecase.ListSubmissions(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmissionsListSuccess, submissions)
}

func (ctrl *AnalysisController) GetSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, constvars.URLParamSubmissionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	submission, err := ctrl.AnalysisUsecase.GetSubmission(ctx, submissionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if submission == nil {
		utils.BuildResultResponse(w, constvars.StatusNotFound, false, constvars.ErrClientSubmissionNotFound, nil)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmissionGetSuccess, submission)
}
