package catalog

import (
	"arogya-service/internal/app/models"
	"context"
)

type CatalogUsecase interface {
	ListDiseases(ctx context.Context) ([]*models.DiseaseInfo, error)
	GetDisease(ctx context.Context, name string) (*models.DiseaseInfo, error)
}
