package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Password     PasswordConfig
	Store        StoreConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KHADIPOS_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"KHADIPOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KHADIPOS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KHADIPOS_DB_DSN"`
	Driver string `envconfig:"KHADIPOS_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"KHADIPOS_DB_HOST"`
	Port     int    `envconfig:"KHADIPOS_DB_PORT" default:"5432"`
	User     string `envconfig:"KHADIPOS_DB_USER"`
	Password string `envconfig:"KHADIPOS_DB_PASSWORD"`
	Name     string `envconfig:"KHADIPOS_DB_NAME"`
	SSLMode  string `envconfig:"KHADIPOS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"KHADIPOS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KHADIPOS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KHADIPOS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KHADIPOS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the store runs on the embedded sqlite driver.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"KHADIPOS_REDIS_URL"`
	Address      string        `envconfig:"KHADIPOS_REDIS_ADDR"`
	Password     string        `envconfig:"KHADIPOS_REDIS_PASSWORD"`
	DB           int           `envconfig:"KHADIPOS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KHADIPOS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KHADIPOS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KHADIPOS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KHADIPOS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KHADIPOS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint is configured. The settings cache
// is optional and the core runs without it.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KHADIPOS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KHADIPOS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KHADIPOS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KHADIPOS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KHADIPOS_ARGON_KEY_LEN" default:"32"`
}

type StoreConfig struct {
	DefaultAdminPassword string        `envconfig:"KHADIPOS_DEFAULT_ADMIN_PASSWORD" default:"admin123"`
	SettingsCacheTTL     time.Duration `envconfig:"KHADIPOS_SETTINGS_CACHE_TTL" default:"5m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KHADIPOS_AUTO_MIGRATE" default:"false"`
	DemoSale    bool `envconfig:"KHADIPOS_DEMO_SALE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.IsSQLite() {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
