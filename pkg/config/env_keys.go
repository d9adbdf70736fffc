package config

// EnvPrefix is handed to envconfig; every variable below carries it
// explicitly so grep finds the full name.
const EnvPrefix = "MYFLIX"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv       = "MYFLIX_APP_ENV"
	EnvPort         = "MYFLIX_APP_PORT"
	EnvLogLevel     = "MYFLIX_LOG_LEVEL"
	EnvLogWarnStack = "MYFLIX_LOG_WARN_STACK"

	EnvDBDriver = "MYFLIX_DB_DRIVER"
	EnvDBDSN    = "MYFLIX_DB_DSN"

	EnvJWTSecret  = "MYFLIX_JWT_SECRET"
	EnvJWTIssuer  = "MYFLIX_JWT_ISSUER"
	EnvJWTExpMins = "MYFLIX_JWT_EXPIRATION_MINUTES"

	EnvSimLoginDelay        = "MYFLIX_SIM_LOGIN_DELAY"
	EnvSimImportDelay       = "MYFLIX_SIM_IMPORT_DELAY"
	EnvSimSettingsSaveDelay = "MYFLIX_SIM_SETTINGS_SAVE_DELAY"

	EnvPollNotificationsInterval = "MYFLIX_POLL_NOTIFICATIONS_INTERVAL"

	EnvAutoMigrate = "MYFLIX_AUTO_MIGRATE"
)
