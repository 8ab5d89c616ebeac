package patients

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientResult, error)
	FindOrCreatePatient(ctx context.Context, username, phone string) (*models.Patient, bool, error)
	SearchPatient(ctx context.Context, request *requests.SearchPatient) ([]*models.Patient, error)
	RecordDiseaseEvent(ctx context.Context, username string, request *requests.RecordDisease) (*responses.DiseaseRecordResult, error)
}

type PatientRepository interface {
	// CreatePatient inserts the patient unless a document with the same
	// username already exists. The bool reports whether an insert happened;
	// when it is false the returned patient is the pre-existing document.
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, bool, error)
	FindByUsername(ctx context.Context, username string) (*models.Patient, error)
	FindByPhone(ctx context.Context, phone string) (*models.Patient, error)
	SearchPatients(ctx context.Context, username, phone string) ([]*models.Patient, error)
	// AddDiseaseEvent appends the event to the patient's diseases array,
	// skipping exact duplicates. Returns matched and modified counts so the
	// caller can tell "no such patient" from "duplicate event skipped".
	AddDiseaseEvent(ctx context.Context, username string, event *models.DiseaseEvent) (int64, int64, error)
}
