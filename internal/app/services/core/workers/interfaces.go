package workers

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type WorkerUsecase interface {
	RegisterWorker(ctx context.Context, request *requests.RegisterWorker) (*responses.WorkerResult, error)
	LoginWorker(ctx context.Context, request *requests.LoginWorker) (*responses.LoginResult, error)
	GetProfile(ctx context.Context, sessionData string) (*models.Worker, error)
	UpdateProfile(ctx context.Context, sessionData string, request *requests.UpdateWorker) (*responses.WorkerResult, error)
	LogoutWorker(ctx context.Context, sessionData string) error
}

type WorkerRepository interface {
	// CreateWorker inserts the worker unless one with the same mobile already
	// exists. The bool reports whether an insert happened; when false the
	// returned worker is the pre-existing document.
	CreateWorker(ctx context.Context, worker *models.Worker) (*models.Worker, bool, error)
	FindByMobile(ctx context.Context, mobile string) (*models.Worker, error)
	FindByAshaID(ctx context.Context, ashaID string) (*models.Worker, error)
	// UpdateByMobile applies the changes and returns matched and modified
	// counts so the caller can tell a missing worker from a no-op.
	UpdateByMobile(ctx context.Context, mobile string, changes map[string]interface{}) (int64, int64, error)
}
