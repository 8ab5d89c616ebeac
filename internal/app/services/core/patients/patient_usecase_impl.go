package patients

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/app/services/shared/queue"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log               *zap.Logger
	PatientRepository PatientRepository
	Publisher         queue.Publisher
}

// NewPatientUsecase wires the patient flows. Publisher may be nil when the
// message broker is disabled; notifications are then skipped.
func NewPatientUsecase(
	logger *zap.Logger,
	patientRepository PatientRepository,
	publisher queue.Publisher,
) PatientUsecase {
	return &patientUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		Publisher:         publisher,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error) {
	phone := utils.NormalizePhone(request.Phone)

	// Checked before the insert so a shared phone can be mentioned in the
	// success message. Purely informational, never blocks the create.
	sharedPhone := false
	if phone != "" {
		existing, err := uc.PatientRepository.FindByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Username != request.Username {
			sharedPhone = true
		}
	}

	patient := &models.Patient{
		Username: request.Username,
		Phone:    phone,
		Diseases: []models.DiseaseEvent{},
		Created:  time.Now().UTC(),
	}

	saved, created, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	if !created {
		return &responses.PatientResult{
			Success: false,
			Message: constvars.ErrClientPatientAlreadyExists,
			Patient: saved,
		}, nil
	}

	message := constvars.PatientCreatedSuccess
	if sharedPhone {
		message = constvars.PatientCreatedSharedPhoneSuccess
	}

	uc.Log.Info("patient created",
		zap.String(constvars.LoggingUsernameKey, saved.Username),
	)
	return &responses.PatientResult{
		Success: true,
		Message: message,
		Patient: saved,
	}, nil
}

func (uc *patientUsecase) FindOrCreatePatient(ctx context.Context, username, phone string) (*models.Patient, bool, error) {
	patient := &models.Patient{
		Username: username,
		Phone:    utils.NormalizePhone(phone),
		Diseases: []models.DiseaseEvent{},
		Created:  time.Now().UTC(),
	}
	return uc.PatientRepository.CreatePatient(ctx, patient)
}

func (uc *patientUsecase) SearchPatient(ctx context.Context, request *requests.SearchPatient) ([]*models.Patient, error) {
	phone := utils.NormalizePhone(request.Phone)
	if request.Username == "" && phone == "" {
		return nil, exceptions.ErrSearchCriteriaRequired(nil)
	}
	return uc.PatientRepository.SearchPatients(ctx, request.Username, phone)
}

func (uc *patientUsecase) RecordDiseaseEvent(ctx context.Context, username string, request *requests.RecordDisease) (*responses.DiseaseRecordResult, error) {
	event := &models.DiseaseEvent{
		Name: request.Disease,
		// Day precision so repeat reports of the same disease on the same
		// day collapse into one event.
		DetectedAt: time.Now().UTC().Truncate(24 * time.Hour),
	}
	if request.WorkerName != "" || request.WorkerAshaID != "" || request.WorkerMobile != "" {
		event.CheckedBy = &models.WorkerAttribution{
			Name:   request.WorkerName,
			AshaID: request.WorkerAshaID,
			Mobile: utils.NormalizePhone(request.WorkerMobile),
		}
	}

	matched, modified, err := uc.PatientRepository.AddDiseaseEvent(ctx, username, event)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return &responses.DiseaseRecordResult{
			Success: false,
			Message: constvars.ErrClientUserNotFound,
		}, nil
	}

	// modified == 0 here means the exact event already existed; that still
	// counts as recorded for the caller.
	if modified > 0 {
		uc.publishDiseaseEvent(ctx, username, event)
	}

	return &responses.DiseaseRecordResult{
		Success: true,
		Message: fmt.Sprintf(constvars.DiseaseRecordedSuccessFormat, request.Disease, username),
	}, nil
}

func (uc *patientUsecase) publishDiseaseEvent(ctx context.Context, username string, event *models.DiseaseEvent) {
	if uc.Publisher == nil {
		return
	}
	message := &queue.DiseaseEventMessage{
		Username:   username,
		Disease:    event.Name,
		DetectedAt: event.DetectedAt,
	}
	if event.CheckedBy != nil {
		message.AshaID = event.CheckedBy.AshaID
	}
	if err := uc.Publisher.PublishDiseaseEvent(ctx, message); err != nil {
		// Notification delivery is best effort.
		uc.Log.Warn("disease event publish failed",
			zap.String(constvars.LoggingUsernameKey, username),
			zap.Error(err),
		)
	}
}
