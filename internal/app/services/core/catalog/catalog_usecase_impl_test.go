package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListDiseases(t *testing.T) {
	uc := NewCatalogUsecase()

	diseases, err := uc.ListDiseases(context.Background())
	assert.NoError(t, err)
	assert.Len(t, diseases, 8)
	for _, disease := range diseases {
		assert.NotEmpty(t, disease.Name)
		assert.NotEmpty(t, disease.Description)
		assert.NotEmpty(t, disease.Treatments)
		assert.NotEmpty(t, disease.Severity)
	}
}

func TestGetDisease(t *testing.T) {
	uc := NewCatalogUsecase()
	ctx := context.Background()

	t.Run("Exact name", func(t *testing.T) {
		disease, err := uc.GetDisease(ctx, "Melanocytic nevus")
		assert.NoError(t, err)
		assert.NotNil(t, disease)
		assert.Equal(t, "Melanocytic nevus", disease.Name)
	})

	t.Run("Lookup is case-insensitive", func(t *testing.T) {
		disease, err := uc.GetDisease(ctx, "  BASAL CELL CARCINOMA ")
		assert.NoError(t, err)
		assert.NotNil(t, disease)
		assert.Equal(t, "Basal cell carcinoma", disease.Name)
	})

	t.Run("Unknown disease returns nil", func(t *testing.T) {
		disease, err := uc.GetDisease(ctx, "Common cold")
		assert.NoError(t, err)
		assert.Nil(t, disease)
	})
}
