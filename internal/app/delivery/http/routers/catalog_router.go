package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/catalog"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	router.Get("/", catalogController.ListDiseases)
	router.Get("/{diseaseName}", catalogController.GetDisease)
}
