package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cargas-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("BLOB_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "cargas-api", cfg.App.Name)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "utf-8", cfg.Export.CSVEncoding)
	assert.Equal(t, 15*time.Second, cfg.Backend.ReadyTimeout)
	assert.True(t, cfg.DB.Migrate)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("EXPORT_CSV_ENCODING", "WINDOWS-1252")
	t.Setenv("BACKEND_READY_TIMEOUT_SECONDS", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "windows-1252", cfg.Export.CSVEncoding)
	assert.Equal(t, 3*time.Second, cfg.Backend.ReadyTimeout)
}

func TestLoad_S3SinBucket_Error(t *testing.T) {
	t.Setenv("BLOB_DRIVER", "s3")
	t.Setenv("BLOB_S3_BUCKET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "cargas", SSLMode: "disable"}
	dsn := c.ConnectionString()
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestLoad_AdminSinPasswordValido_Error(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@cargas.local")
	t.Setenv("ADMIN_PASSWORD", "corta")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ProductionSinJWTSecret_Error(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ReadyTimeoutNoPositivo_Error(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		t.Setenv("BACKEND_READY_TIMEOUT_SECONDS", v)
		_, err := config.Load()
		assert.Error(t, err, v)
	}
}
