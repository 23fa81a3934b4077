package config

const EnvPrefix = "KHADIPOS"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv = "KHADIPOS_APP_ENV"
	EnvDBDSN  = "KHADIPOS_DB_DSN"
	EnvDBHost = "KHADIPOS_DB_HOST"
	EnvDBUser = "KHADIPOS_DB_USER"
	EnvDBName = "KHADIPOS_DB_NAME"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
