package config

import (
	"mortuary-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mortuary"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
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
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "mortuary-reports"),
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
			Env:                 utils.GetEnvString("APP_ENV", "development"),
			Port:                utils.GetEnvString("APP_PORT", ":8080"),
			Version:             utils.GetEnvString("APP_VERSION", "v1"),
			Address:             utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:            utils.GetEnvString("APP_TIMEZONE", "Africa/Nairobi"),
			EndpointPrefix:      utils.GetEnvString("APP_ENDPOINT_PREFIX", "mortuary"),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SuperadminAPIKeyHash: utils.GetEnvString("APP_SUPERADMIN_API_KEY_HASH", ""),
		},
		EMR: EMR{
			BaseUrl:  utils.GetEnvString("EMR_BASE_URL", "http://localhost:8081/ws/rest/v1"),
			Username: utils.GetEnvString("EMR_USERNAME", ""),
			Password: utils.GetEnvString("EMR_PASSWORD", ""),
		},
		FHIR: FHIR{
			BaseUrl: utils.GetEnvString("FHIR_BASE_URL", "http://localhost:8081/ws/fhir2/R4"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Mortuary: Mortuary{
			LocationUUID:               utils.GetEnvString("MORTUARY_LOCATION_UUID", ""),
			VisitTypeUUID:              utils.GetEnvString("MORTUARY_VISIT_TYPE_UUID", ""),
			AdmissionEncounterType:     utils.GetEnvString("MORTUARY_ADMISSION_ENCOUNTER_TYPE_UUID", ""),
			DischargeEncounterType:     utils.GetEnvString("MORTUARY_DISCHARGE_ENCOUNTER_TYPE_UUID", ""),
			DisposalEncounterType:      utils.GetEnvString("MORTUARY_DISPOSAL_ENCOUNTER_TYPE_UUID", ""),
			BedAssignmentEncounterType: utils.GetEnvString("MORTUARY_BED_ASSIGNMENT_ENCOUNTER_TYPE_UUID", ""),
			AutopsyEncounterType:       utils.GetEnvString("MORTUARY_AUTOPSY_ENCOUNTER_TYPE_UUID", ""),
			CacheTTLSeconds:            utils.GetEnvInt("MORTUARY_CACHE_TTL_SECONDS", 60),
			EventsQueueName:            utils.GetEnvString("MORTUARY_EVENTS_QUEUE", "mortuary_events_queue"),
		},
		Reports: Reports{
			ConceptReleasedTo:       utils.GetEnvString("REPORT_CONCEPT_RELEASED_TO_UUID", ""),
			ConceptBurialPermit:     utils.GetEnvString("REPORT_CONCEPT_BURIAL_PERMIT_UUID", ""),
			ConceptNextOfKin:        utils.GetEnvString("REPORT_CONCEPT_NEXT_OF_KIN_UUID", ""),
			ConceptAutopsyFindings:  utils.GetEnvString("REPORT_CONCEPT_AUTOPSY_FINDINGS_UUID", ""),
			ConceptCauseOfDeath:     utils.GetEnvString("REPORT_CONCEPT_CAUSE_OF_DEATH_UUID", ""),
			ConceptPathologistNotes: utils.GetEnvString("REPORT_CONCEPT_PATHOLOGIST_NOTES_UUID", ""),
		},
	}
}
