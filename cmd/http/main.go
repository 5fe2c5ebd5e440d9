package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/app/delivery/http/routers"
	"arogya-service/internal/app/drivers/database"
	"arogya-service/internal/app/drivers/logger"
	"arogya-service/internal/app/drivers/messaging"
	"arogya-service/internal/app/drivers/storage"
	"arogya-service/internal/app/services/core/documents"
	"arogya-service/internal/app/services/core/patients"
	"arogya-service/internal/app/services/core/practitioners"
	"arogya-service/internal/app/services/gateway"
	"arogya-service/internal/app/services/shared/auditqueue"
	redisrepo "arogya-service/internal/app/services/shared/redis"
	miniostorage "arogya-service/internal/app/services/shared/storage"
	"arogya-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitConn,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Driver shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared drivers
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	minioStorage := miniostorage.NewMinioStorage(bootstrap.Minio)
	auditQueue, err := auditqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Exchange.AuditQueue)
	if err != nil {
		logrus.Fatalf("Audit queue declaration failed: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	sourceConfig := bootstrap.InternalConfig.PatientSource
	patientSources := []contracts.PatientSource{
		patients.NewRemotePatientSource(sourceConfig, bootstrap.Logger),
		patients.NewStaticPatientSource(sourceConfig.StaticFile),
	}
	patientProvider := patients.NewPatientProvider(
		patientSources,
		redisRepository,
		time.Duration(sourceConfig.CacheTTLSec)*time.Second,
		bootstrap.Logger,
	)
	patientUsecase := patients.NewPatientUsecase(patientProvider)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Practitioner
	var practitionerProvider contracts.PractitionerProvider
	if bootstrap.InternalConfig.Practitioner.ProviderMode == constvars.PractitionerProviderInjected {
		practitionerProvider = practitioners.NewInjectedProvider(bootstrap.InternalConfig.Practitioner.InjectedFile, bootstrap.Logger)
	} else {
		practitionerProvider = practitioners.NewRosterProvider()
	}
	practitionerUsecase := practitioners.NewPractitionerUsecase(practitionerProvider)
	practitionerController := practitioners.NewPractitionerController(bootstrap.Logger, practitionerUsecase)

	// Document
	exchangeGateway := gateway.NewExchangeGateway(bootstrap.InternalConfig.Exchange, bootstrap.Logger)
	documentUsecase := documents.NewDocumentUsecase(
		patientProvider,
		practitionerProvider,
		exchangeGateway,
		minioStorage,
		auditQueue,
		bootstrap.Logger,
		bootstrap.DriverConfig.Minio.BucketName,
	)
	documentController := documents.NewDocumentController(bootstrap.Logger, documentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		patientController,
		practitionerController,
		documentController,
	)
}
