package config

const (
	EnvPrefix = "FREIGHTDESK"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "FREIGHTDESK_APP_ENV"
	EnvPort     = "FREIGHTDESK_APP_PORT"
	EnvLogLevel = "FREIGHTDESK_LOG_LEVEL"

	EnvDBDSN  = "FREIGHTDESK_DB_DSN"
	EnvDBHost = "FREIGHTDESK_DB_HOST"
	EnvDBUser = "FREIGHTDESK_DB_USER"
	EnvDBName = "FREIGHTDESK_DB_NAME"

	EnvRedisURL = "FREIGHTDESK_REDIS_URL"

	EnvJWTSecret = "FREIGHTDESK_JWT_SECRET"
	EnvJWTIssuer = "FREIGHTDESK_JWT_ISSUER"

	EnvLoadsPageSize            = "FREIGHTDESK_LOADS_PAGE_SIZE"
	EnvLoadsInitialStatus       = "FREIGHTDESK_LOADS_INITIAL_STATUS"
	EnvLoadsImportInitialStatus = "FREIGHTDESK_LOADS_IMPORT_INITIAL_STATUS"
	EnvLoadsLockTerminal        = "FREIGHTDESK_LOADS_LOCK_TERMINAL"
	EnvLoadsTimezone            = "FREIGHTDESK_LOADS_TIMEZONE"

	EnvFunctionsBaseURL = "FREIGHTDESK_FUNCTIONS_BASE_URL"

	EnvGCPProjectID      = "FREIGHTDESK_GCP_PROJECT_ID"
	EnvGCSBucket         = "FREIGHTDESK_GCS_BUCKET_NAME"
	EnvGCSDownloadExpiry = "FREIGHTDESK_GCS_DOWNLOAD_URL_EXPIRY"

	EnvPubSubLoadsTopic = "FREIGHTDESK_PUBSUB_LOADS_TOPIC"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
