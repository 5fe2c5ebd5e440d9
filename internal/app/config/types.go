package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App           App
		Exchange      Exchange
		PatientSource PatientSource
		Practitioner  Practitioner
	}

	DriverConfig struct {
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
	}

	// Exchange is the health-information-exchange gateway the assembled
	// bundles are submitted to.
	Exchange struct {
		BaseUrl     string
		BearerToken string
		TimeoutSec  int
		AuditQueue  string
	}

	// PatientSource lists the prioritized patient data sources: a remote
	// endpoint with an optional bearer credential, then a static JSON
	// document. CacheTTLSec bounds the redis patient-list cache.
	PatientSource struct {
		RemoteUrl    string
		BearerToken  string
		StaticFile   string
		CacheTTLSec  int
		RemoteTmoSec int
	}

	// Practitioner selects the provider mode ("roster" or "injected") and, in
	// injected mode, the JSON document holding the single external object.
	Practitioner struct {
		ProviderMode string
		InjectedFile string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
