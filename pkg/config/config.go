package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Sim          SimConfig
	Poll         PollConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MYFLIX_APP_ENV" required:"true"`
	Port         string `envconfig:"MYFLIX_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MYFLIX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MYFLIX_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"MYFLIX_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"MYFLIX_DB_DSN" default:"file:myflix.db?_pragma=busy_timeout(5000)"`

	MaxOpenConns    int           `envconfig:"MYFLIX_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MYFLIX_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MYFLIX_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MYFLIX_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

func (db DBConfig) validate() error {
	switch db.Driver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("unsupported value for %s: %q", EnvDBDriver, db.Driver)
	}
	if db.DSN == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	return nil
}

type JWTConfig struct {
	Secret            string `envconfig:"MYFLIX_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MYFLIX_JWT_ISSUER" default:"myflix"`
	ExpirationMinutes int    `envconfig:"MYFLIX_JWT_EXPIRATION_MINUTES" default:"1440"`
}

func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// SimConfig carries the artificial latencies the demo uses to mimic a
// slow upstream. Tests set them to zero.
type SimConfig struct {
	LoginDelay        time.Duration `envconfig:"MYFLIX_SIM_LOGIN_DELAY" default:"800ms"`
	ImportDelay       time.Duration `envconfig:"MYFLIX_SIM_IMPORT_DELAY" default:"1500ms"`
	SettingsSaveDelay time.Duration `envconfig:"MYFLIX_SIM_SETTINGS_SAVE_DELAY" default:"500ms"`
}

type PollConfig struct {
	NotificationsInterval time.Duration `envconfig:"MYFLIX_POLL_NOTIFICATIONS_INTERVAL" default:"2s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MYFLIX_AUTO_MIGRATE" default:"false"`
}
