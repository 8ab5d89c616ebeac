package routers

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/analysis"
	"arogya-service/internal/app/services/core/catalog"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/core/workers"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	workerController *workers.WorkerController,
	analysisController *analysis.AnalysisController,
	catalogController *catalog.CatalogController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
				utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/workers", func(r chi.Router) {
				attachWorkerRoutes(r, middlewares, workerController)
			})

			r.Route("/analysis", func(r chi.Router) {
				attachAnalysisRoutes(r, middlewares, analysisController)
			})

			r.Route("/diseases", func(r chi.Router) {
				attachCatalogRoutes(r, middlewares, catalogController)
			})
		})
	})
}
