package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env         string            `yaml:"env"`         // Env is the current environment: local, development, production.
	Postgres    PostgresConfig    `yaml:"postgres"`    // Postgres holds the database configuration
	Credentials CredentialsConfig `yaml:"credentials"` // Credentials selects where the admin digest lives
	Monitoring  MonitoringConfig  `yaml:"monitoring"`  // Monitoring configures the metrics and health endpoint
	Migrations  MigrationsConfig  `yaml:"migrations"`  // Migrations configures the migrator
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

// CredentialsConfig selects the admin credential backend.
type CredentialsConfig struct {
	Backend string `yaml:"backend"` // Backend is either `file` or `database`.
	File    string `yaml:"file"`    // File is the credential artifact path for the file backend.
}

type MonitoringConfig struct {
	Port int `yaml:"port"` // Port of the monitoring server, 0 disables it.
}

type MigrationsConfig struct {
	Dir string `yaml:"dir"`
}

var envBindings = map[string]string{
	"env":                 "HESTIA_ENV",
	"postgres.host":       "DB_HOST",
	"postgres.port":       "DB_PORT",
	"postgres.user":       "DB_USERNAME",
	"postgres.password":   "DB_PASSWORD",
	"postgres.db_name":    "DB_NAME",
	"credentials.backend": "HESTIA_CREDENTIALS_BACKEND",
	"credentials.file":    "HESTIA_CREDENTIALS_FILE",
	"monitoring.port":     "HESTIA_MONITORING_PORT",
	"migrations.dir":      "HESTIA_MIGRATIONS_DIR",
}

// MustLoad loads the configuration from the file named by CONFIG_PATH and the environment.
// It panics when the configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads configPath (optional) and applies environment overrides on top of it.
func Load(configPath string) (*Config, error) {
	vpr := viper.New()

	const maxPort = 65535

	vpr.SetDefault("env", "local")
	vpr.SetDefault("postgres.host", "localhost")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("credentials.backend", "file")
	vpr.SetDefault("credentials.file", "admin_credentials.txt")
	vpr.SetDefault("monitoring.port", 0)
	vpr.SetDefault("migrations.dir", "migrations")

	for key, env := range envBindings {
		if err := vpr.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		Credentials: CredentialsConfig{
			Backend: vpr.GetString("credentials.backend"),
			File:    vpr.GetString("credentials.file"),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
		Migrations: MigrationsConfig{
			Dir: vpr.GetString("migrations.dir"),
		},
	}

	switch cfg.Credentials.Backend {
	case "file":
		if cfg.Credentials.File == "" {
			return nil, errors.New("credentials.file must be set for the file backend")
		}
	case "database":
	default:
		return nil, fmt.Errorf("unsupported credentials backend %q", cfg.Credentials.Backend)
	}

	if cfg.Monitoring.Port < 0 || cfg.Monitoring.Port > maxPort {
		return nil, fmt.Errorf("invalid monitoring port %d", cfg.Monitoring.Port)
	}

	return cfg, nil
}
