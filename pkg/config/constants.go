package config

const (
	// EnvPrefix is empty because every variable already carries the STAFFHUB_ prefix in its tag.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "STAFFHUB_APP_ENV"
	EnvPort     = "STAFFHUB_APP_PORT"
	EnvDBDSN    = "STAFFHUB_DB_DSN"
	EnvDBHost   = "STAFFHUB_DB_HOST"
	EnvDBUser   = "STAFFHUB_DB_USER"
	EnvDBName   = "STAFFHUB_DB_NAME"
	EnvRedisURL = "STAFFHUB_REDIS_URL"

	EnvJWTSecret              = "STAFFHUB_JWT_SECRET"
	EnvJWTIssuer              = "STAFFHUB_JWT_ISSUER"
	EnvJWTExpMins             = "STAFFHUB_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "STAFFHUB_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
