package catalog

import (
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) ListDiseases(w http.ResponseWriter, r *http.Request) {
	diseases, err := ctrl.CatalogUsecase.ListDiseases(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiseaseCatalogListSuccess, diseases)
}

func (ctrl *CatalogController) GetDisease(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, constvars.URLParamDiseaseName)

	disease, err := ctrl.CatalogUsecase.GetDisease(r.Context(), name)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if disease == nil {
		utils.BuildResultResponse(w, constvars.StatusNotFound, false, constvars.ErrClientDiseaseNotInCatalog, nil)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiseaseCatalogGetSuccess, disease)
}
