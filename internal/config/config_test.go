package config_test

import (
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env: development
postgres:
  host: db.internal
  port: "6543"
  user: hestia
  password: secret
  db_name: employee_management_system
credentials:
  backend: database
monitoring:
  port: 9090
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(filet.TmpDir(t, ""), "config.yaml")
	filet.File(t, path, content)

	return path
}

func TestLoad_FromFile(t *testing.T) {
	defer filet.CleanUp(t)

	cfg, err := config.Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "6543", cfg.Postgres.Port)
	assert.Equal(t, "hestia", cfg.Postgres.User)
	assert.Equal(t, "secret", cfg.Postgres.Password)
	assert.Equal(t, "employee_management_system", cfg.Postgres.Dbname)
	assert.Equal(t, "database", cfg.Credentials.Backend)
	assert.Equal(t, 9090, cfg.Monitoring.Port)
	assert.Equal(t, "migrations", cfg.Migrations.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	defer filet.CleanUp(t)
	path := writeConfig(t, sampleConfig)

	t.Setenv("HESTIA_ENV", "local")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")
	t.Setenv("HESTIA_CREDENTIALS_BACKEND", "file")
	t.Setenv("HESTIA_CREDENTIALS_FILE", "/tmp/admin.txt")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Postgres.Host)
	assert.Equal(t, "12345", cfg.Postgres.Port)
	assert.Equal(t, "admin", cfg.Postgres.User)
	assert.Equal(t, "adminpass", cfg.Postgres.Password)
	assert.Equal(t, "testName", cfg.Postgres.Dbname)
	assert.Equal(t, "file", cfg.Credentials.Backend)
	assert.Equal(t, "/tmp/admin.txt", cfg.Credentials.File)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "file", cfg.Credentials.Backend)
	assert.Equal(t, "admin_credentials.txt", cfg.Credentials.File)
	assert.Zero(t, cfg.Monitoring.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, "config file does not exist")
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("HESTIA_CREDENTIALS_BACKEND", "vault")
		_, err := config.Load("")
		require.ErrorContains(t, err, `unsupported credentials backend "vault"`)
	})

	t.Run("bad monitoring port", func(t *testing.T) {
		t.Setenv("HESTIA_MONITORING_PORT", "70000")
		_, err := config.Load("")
		require.ErrorContains(t, err, "invalid monitoring port")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		defer filet.CleanUp(t)
		_, err := config.Load(writeConfig(t, "postgres: [unterminated"))
		require.ErrorContains(t, err, "failed to read config file")
	})
}

func TestMustLoad_Panics(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Panics(t, func() {
		config.MustLoad()
	})
}

func TestMustLoad_FromEnvPath(t *testing.T) {
	defer filet.CleanUp(t)
	t.Setenv("CONFIG_PATH", writeConfig(t, sampleConfig))

	cfg := config.MustLoad()

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
}
