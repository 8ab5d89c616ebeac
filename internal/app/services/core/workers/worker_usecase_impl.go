package workers

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/models"
	"arogya-service/internal/app/services/shared/session"
	"arogya-service/internal/app/services/shared/storage"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type workerUsecase struct {
	Log              *zap.Logger
	WorkerRepository WorkerRepository
	SessionService   session.SessionService
	Storage          storage.Storage
	InternalConfig   *config.InternalConfig
}

func NewWorkerUsecase(
	logger *zap.Logger,
	workerRepository WorkerRepository,
	sessionService session.SessionService,
	storageService storage.Storage,
	internalConfig *config.InternalConfig,
) WorkerUsecase {
	return &workerUsecase{
		Log:              logger,
		WorkerRepository: workerRepository,
		SessionService:   sessionService,
		Storage:          storageService,
		InternalConfig:   internalConfig,
	}
}

func (uc *workerUsecase) RegisterWorker(ctx context.Context, request *requests.RegisterWorker) (*responses.WorkerResult, error) {
	mobile := utils.NormalizePhone(request.Mobile)

	// The asha_id key has no upsert guarding it, so it is checked up front.
	// The unique index on asha_id backstops the race window.
	existing, err := uc.WorkerRepository.FindByAshaID(ctx, request.AshaID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &responses.WorkerResult{
			Success: false,
			Message: constvars.ErrClientWorkerIDExists,
		}, nil
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	worker := &models.Worker{
		Name:      request.Name,
		AshaID:    request.AshaID,
		Mobile:    mobile,
		Education: request.Education,
		Years:     coerceYears(request.Years),
		Village:   request.Village,
		Password:  hashed,
		Photo:     "",
		Created:   time.Now().UTC(),
	}

	saved, created, err := uc.WorkerRepository.CreateWorker(ctx, worker)
	if err != nil {
		return nil, err
	}
	if !created {
		return &responses.WorkerResult{
			Success: false,
			Message: constvars.ErrClientWorkerMobileExists,
		}, nil
	}

	uc.Log.Info("asha worker registered",
		zap.String(constvars.LoggingMobileKey, saved.Mobile),
	)
	return &responses.WorkerResult{
		Success: true,
		Message: constvars.WorkerCreatedSuccess,
		Worker:  saved,
	}, nil
}

func (uc *workerUsecase) LoginWorker(ctx context.Context, request *requests.LoginWorker) (*responses.LoginResult, error) {
	mobile := utils.NormalizePhone(request.Mobile)

	worker, err := uc.WorkerRepository.FindByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return &responses.LoginResult{
			Success: false,
			Message: constvars.ErrClientWorkerNotFound,
		}, nil
	}
	if !utils.CheckPasswordHash(request.Password, worker.Password) {
		return &responses.LoginResult{
			Success: false,
			Message: constvars.ErrClientInvalidPassword,
		}, nil
	}

	sessionModel := &models.Session{
		SessionID: utils.GenerateSessionID(),
		WorkerID:  worker.ID,
		AshaID:    worker.AshaID,
		Name:      worker.Name,
		Mobile:    worker.Mobile,
	}
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.SessionService.CreateSession(ctx, sessionModel, ttl); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionModel.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("worker logged in",
		zap.String(constvars.LoggingMobileKey, worker.Mobile),
	)
	return &responses.LoginResult{
		Success: true,
		Message: constvars.LoginSuccess,
		Token:   token,
		Worker:  worker,
	}, nil
}

func (uc *workerUsecase) GetProfile(ctx context.Context, sessionData string) (*models.Worker, error) {
	sessionModel, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	worker, err := uc.WorkerRepository.FindByMobile(ctx, sessionModel.Mobile)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return worker, nil
}

func (uc *workerUsecase) UpdateProfile(ctx context.Context, sessionData string, request *requests.UpdateWorker) (*responses.WorkerResult, error) {
	sessionModel, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if request.Name != "" {
		changes["name"] = request.Name
	}
	if request.AshaID != "" {
		changes["asha_id"] = request.AshaID
	}
	if request.Mobile != "" {
		changes["mobile"] = utils.NormalizePhone(request.Mobile)
	}
	if request.Education != "" {
		changes["education"] = request.Education
	}
	if request.Years != "" {
		changes["years"] = coerceYears(request.Years)
	}
	if request.Village != "" {
		changes["village"] = request.Village
	}
	if request.Password != "" {
		hashed, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		changes["password"] = hashed
	}
	if request.Photo != "" {
		objectName, err := uc.uploadPhoto(ctx, sessionModel.AshaID, request.Photo)
		if err != nil {
			return nil, err
		}
		changes["photo"] = objectName
	}

	for field := range changes {
		if !constvars.WorkerUpdatableFields[field] {
			delete(changes, field)
		}
	}
	if len(changes) == 0 {
		return &responses.WorkerResult{
			Success: false,
			Message: constvars.ErrClientWorkerNoChanges,
		}, nil
	}
	changes["updated"] = time.Now().UTC()

	matched, _, err := uc.WorkerRepository.UpdateByMobile(ctx, sessionModel.Mobile, changes)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return &responses.WorkerResult{
			Success: false,
			Message: constvars.ErrClientWorkerNotFound,
		}, nil
	}

	// Profile lookups resolve the worker by the mobile stored in the session,
	// so identity changes must be written back or the token stops resolving.
	refreshSession := false
	if updatedMobile, ok := changes["mobile"].(string); ok && updatedMobile != sessionModel.Mobile {
		sessionModel.Mobile = updatedMobile
		refreshSession = true
	}
	if updatedAshaID, ok := changes["asha_id"].(string); ok && updatedAshaID != sessionModel.AshaID {
		sessionModel.AshaID = updatedAshaID
		refreshSession = true
	}
	if updatedName, ok := changes["name"].(string); ok && updatedName != sessionModel.Name {
		sessionModel.Name = updatedName
		refreshSession = true
	}
	if refreshSession {
		ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
		if err := uc.SessionService.CreateSession(ctx, sessionModel, ttl); err != nil {
			return nil, err
		}
	}

	worker, err := uc.WorkerRepository.FindByMobile(ctx, sessionModel.Mobile)
	if err != nil {
		return nil, err
	}
	return &responses.WorkerResult{
		Success: true,
		Message: constvars.WorkerUpdatedSuccess,
		Worker:  worker,
	}, nil
}

func (uc *workerUsecase) LogoutWorker(ctx context.Context, sessionData string) error {
	sessionModel, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, sessionModel.SessionID)
}

func (uc *workerUsecase) uploadPhoto(ctx context.Context, ashaID, encoded string) (string, error) {
	data, ext, err := utils.DecodeBase64Image(encoded)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	objectName := utils.GenerateObjectName("workers", ashaID, ext)
	return uc.Storage.UploadObject(ctx, objectName, data, utils.ContentTypeForExtension(ext))
}

// coerceYears parses years of experience, clamping anything unusable to 0.
func coerceYears(raw string) int {
	years, err := strconv.Atoi(raw)
	if err != nil || years < 0 {
		return 0
	}
	return years
}
