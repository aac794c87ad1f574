package main

import (
	"context"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/app/delivery/http/middlewares"
	"mortuary-service/internal/app/delivery/http/routers"
	"mortuary-service/internal/app/drivers/database"
	"mortuary-service/internal/app/drivers/logger"
	"mortuary-service/internal/app/drivers/messaging"
	"mortuary-service/internal/app/drivers/storage"
	"mortuary-service/internal/app/services/core/occupancy"
	"mortuary-service/internal/app/services/core/queueview"
	"mortuary-service/internal/app/services/core/reports"
	"mortuary-service/internal/app/services/core/session"
	"mortuary-service/internal/app/services/core/workflows"
	"mortuary-service/internal/app/services/emr/beds"
	"mortuary-service/internal/app/services/emr/billing"
	"mortuary-service/internal/app/services/emr/concepts"
	"mortuary-service/internal/app/services/emr/emrhttp"
	"mortuary-service/internal/app/services/emr/encounters"
	"mortuary-service/internal/app/services/emr/locations"
	"mortuary-service/internal/app/services/emr/observations"
	"mortuary-service/internal/app/services/emr/patients"
	"mortuary-service/internal/app/services/emr/persons"
	"mortuary-service/internal/app/services/emr/queue"
	"mortuary-service/internal/app/services/emr/visits"
	fhirencounters "mortuary-service/internal/app/services/fhir/encounters"
	"mortuary-service/internal/app/services/shared/cache"
	"mortuary-service/internal/app/services/shared/events"
	"mortuary-service/internal/app/services/shared/redis"
	sharedstorage "mortuary-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, bootLog)
	redisClient := database.NewRedisClient(driverConfig, bootLog)
	rabbitConn := messaging.NewRabbitMQ(driverConfig, bootLog)
	minioClient := storage.NewMinio(driverConfig, bootLog)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down dependencies", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	taggedCache := cache.NewTaggedCache(redisRepository)

	// Saga ledger
	sagaRepository := workflows.NewSagaMongoRepository(bootstrap.MongoDB)

	// Report archive
	reportStorage := sharedstorage.NewMinioReportStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	// Event stream
	eventPublisher, err := events.NewAmqpEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Mortuary.EventsQueueName)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up event publisher", zap.Error(err))
	}

	// EMR transport
	emrClient := emrhttp.NewClient(
		bootstrap.InternalConfig.EMR.Username,
		bootstrap.InternalConfig.EMR.Password,
		bootstrap.Logger,
	)
	emrBaseUrl := bootstrap.InternalConfig.EMR.BaseUrl

	// EMR clients
	admissionLocationEmrClient := locations.NewAdmissionLocationEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	patientEmrClient := patients.NewPatientEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	visitEmrClient := visits.NewVisitEmrClient(emrBaseUrl, bootstrap.InternalConfig.Mortuary.LocationUUID, emrClient, bootstrap.Logger)
	encounterEmrClient := encounters.NewEncounterEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	bedEmrClient := beds.NewBedEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	queueEmrClient := queue.NewQueueEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	billingEmrClient := billing.NewBillingEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	observationEmrClient := observations.NewObservationEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	personEmrClient := persons.NewPersonEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)
	conceptEmrClient := concepts.NewConceptEmrClient(emrBaseUrl, emrClient, bootstrap.Logger)

	// FHIR clients
	encounterFhirClient := fhirencounters.NewEncounterFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.Logger)

	// Session
	sessionService := session.NewSessionService(bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Occupancy
	occupancyUsecase := occupancy.NewOccupancyUsecase(
		admissionLocationEmrClient,
		visitEmrClient,
		queueEmrClient,
		patientEmrClient,
		encounterFhirClient,
		taggedCache,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	occupancyController := occupancy.NewOccupancyController(bootstrap.Logger, occupancyUsecase)

	// Workflows
	workflowUsecase := workflows.NewWorkflowUsecase(
		visitEmrClient,
		encounterEmrClient,
		bedEmrClient,
		queueEmrClient,
		billingEmrClient,
		personEmrClient,
		patientEmrClient,
		conceptEmrClient,
		sagaRepository,
		taggedCache,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	workflowController := workflows.NewWorkflowController(bootstrap.Logger, workflowUsecase)

	// Queue
	queueUsecase := queueview.NewQueueUsecase(
		queueEmrClient,
		taggedCache,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	queueController := queueview.NewQueueController(bootstrap.Logger, queueUsecase)

	// Reports
	reportUsecase := reports.NewReportUsecase(
		patientEmrClient,
		encounterEmrClient,
		observationEmrClient,
		reportStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		occupancyController,
		workflowController,
		queueController,
		reportController,
	)
}
