package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/analysis"

	"github.com/go-chi/chi/v5"
)

func attachAnalysisRoutes(router chi.Router, middlewares *middlewares.Middlewares, analysisController *analysis.AnalysisController) {
	router.Post("/", analysisController.AnalyzeImage)
	router.Get("/submissions", analysisController.ListSubmissions)
	router.Get("/submissions/{submissionID}", analysisController.GetSubmission)
}
