package config

import (
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "arogya-documents"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 16),
		},
		Exchange: Exchange{
			BaseUrl:     utils.GetEnvString("EXCHANGE_BASE_URL", "http://localhost:5555/exchange"),
			BearerToken: utils.GetEnvString("EXCHANGE_BEARER_TOKEN", ""),
			TimeoutSec:  utils.GetEnvInt("EXCHANGE_TIMEOUT_SECONDS", 15),
			AuditQueue:  utils.GetEnvString("EXCHANGE_AUDIT_QUEUE", "document_submission_audit_queue"),
		},
		PatientSource: PatientSource{
			RemoteUrl:    utils.GetEnvString("PATIENT_SOURCE_REMOTE_URL", ""),
			BearerToken:  utils.GetEnvString("PATIENT_SOURCE_BEARER_TOKEN", ""),
			StaticFile:   utils.GetEnvString("PATIENT_SOURCE_STATIC_FILE", "patients.json"),
			CacheTTLSec:  utils.GetEnvInt("PATIENT_SOURCE_CACHE_TTL_SECONDS", 300),
			RemoteTmoSec: utils.GetEnvInt("PATIENT_SOURCE_REMOTE_TIMEOUT_SECONDS", 10),
		},
		Practitioner: Practitioner{
			ProviderMode: utils.GetEnvString("PRACTITIONER_PROVIDER_MODE", constvars.PractitionerProviderRoster),
			InjectedFile: utils.GetEnvString("PRACTITIONER_INJECTED_FILE", ""),
		},
	}
}
