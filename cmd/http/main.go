package main

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/delivery/http/routers"
	"arogya-service/internal/app/drivers/database"
	"arogya-service/internal/app/drivers/logger"
	"arogya-service/internal/app/drivers/messaging"
	"arogya-service/internal/app/drivers/storage"
	"arogya-service/internal/app/services/core/analysis"
	"arogya-service/internal/app/services/core/catalog"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/core/workers"
	"arogya-service/internal/app/services/shared/queue"
	sharedredis "arogya-service/internal/app/services/shared/redis"
	"arogya-service/internal/app/services/shared/session"
	sharedstorage "arogya-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	storageService := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	var publisher queue.Publisher
	if bootstrap.RabbitMQ != nil {
		var err error
		publisher, err = queue.NewPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
		if err != nil {
			logrus.Fatalf("Failed to set up queue publisher: %v", err)
		}
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Patients
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(bootstrap.Logger, patientMongoRepository, publisher)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Workers
	workerMongoRepository := workers.NewWorkerMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	workerUsecase := workers.NewWorkerUsecase(bootstrap.Logger, workerMongoRepository, sessionService, storageService, bootstrap.InternalConfig)
	workerController := workers.NewWorkerController(bootstrap.Logger, workerUsecase)

	// Analysis
	modelClient, err := analysis.NewGeminiModelClient(context.Background(), &bootstrap.InternalConfig.Gemini)
	if err != nil {
		logrus.Fatalf("Failed to set up model client: %v", err)
	}
	submissionMongoRepository := analysis.NewSubmissionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	analysisUsecase := analysis.NewAnalysisUsecase(bootstrap.Logger, modelClient, submissionMongoRepository, patientUsecase, storageService)
	analysisController := analysis.NewAnalysisController(bootstrap.Logger, analysisUsecase, bootstrap.InternalConfig)

	// Catalog
	catalogUsecase := catalog.NewCatalogUsecase()
	catalogController := catalog.NewCatalogController(bootstrap.Logger, catalogUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patientController,
		workerController,
		analysisController,
		catalogController,
	)
}
