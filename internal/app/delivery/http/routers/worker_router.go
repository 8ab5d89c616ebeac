package routers

import (
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/services/core/workers"

	"github.com/go-chi/chi/v5"
)

func attachWorkerRoutes(router chi.Router, middlewares *middlewares.Middlewares, workerController *workers.WorkerController) {
	router.Post("/register", workerController.RegisterWorker)
	router.Post("/login", workerController.LoginWorker)
	router.With(middlewares.Authenticate).Get("/profile", workerController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", workerController.UpdateProfile)
	router.With(middlewares.Authenticate).Post("/logout", workerController.LogoutWorker)
}
