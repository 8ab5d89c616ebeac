package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/search", patientController.SearchPatient)
	router.Post("/{username}/diseases", patientController.RecordDisease)
}
