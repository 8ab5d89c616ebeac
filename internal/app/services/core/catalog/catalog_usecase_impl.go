package catalog

import (
	"arogya-service/internal/app/models"
	"context"
	"strings"
)

type catalogUsecase struct{}

func NewCatalogUsecase() CatalogUsecase {
	return &catalogUsecase{}
}

func (uc *catalogUsecase) ListDiseases(ctx context.Context) ([]*models.DiseaseInfo, error) {
	return diseaseInfo, nil
}

func (uc *catalogUsecase) GetDisease(ctx context.Context, name string) (*models.DiseaseInfo, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, disease := range diseaseInfo {
		if strings.ToLower(disease.Name) == needle {
			return disease, nil
		}
	}
	return nil, nil
}
