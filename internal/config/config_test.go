package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"file-catalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Success(t *testing.T) {
	// config.New reads ./config/local.env relative to the working directory
	td := t.TempDir()
	cfgDir := filepath.Join(td, "config")
	require.NoError(t, os.Mkdir(cfgDir, 0o755))

	envContent := `POSTGRES_HOST=localhost
POSTGRES_PORT=5433
POSTGRES_USER=catalog
POSTGRES_PASSWORD=2529
POSTGRES_DB=catalog

JWT_TOKEN=very_very_secret_key
JWT_TTL=30m
CATALOG_ADMINS=jsmith, analyst2

GRPC_SERVER_PORT=50051
HTTP_SERVER_PORT=8081
DISTRIBUTION_BASE_URL=https://cdn.example.com/files
CATALOG_PERSIST_POSTGRES=true

REDIS_HOST=localhost
REDIS_PORT=6380
REDIS_PASSWORD=
REDIS_DB=0

MINIO_ENDPOINT=localhost:9000
MINIO_BUCKET_NAME=versions
`
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "local.env"), []byte(envContent), 0o644))

	origWd, _ := os.Getwd()
	defer os.Chdir(origWd)
	require.NoError(t, os.Chdir(td))

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, uint16(5433), cfg.Postgres.Port)
	assert.Equal(t, "catalog", cfg.Postgres.Username)
	assert.Equal(t, "2529", cfg.Postgres.Password)
	assert.Equal(t, "catalog", cfg.Postgres.Database)

	assert.Equal(t, "very_very_secret_key", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "https://cdn.example.com/files", cfg.DistributionBaseURL)
	assert.True(t, cfg.PersistPostgres)
	assert.False(t, cfg.UseMinIO)
	assert.Equal(t, int64(100), cfg.NotifyHistory)

	assert.True(t, cfg.IsAdmin("jsmith"))
	assert.True(t, cfg.IsAdmin("analyst2"))
	assert.False(t, cfg.IsAdmin("klee"))

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, "", cfg.Redis.Password)
	assert.Equal(t, 0, cfg.Redis.Db)

	assert.Equal(t, "localhost:9000", cfg.MinIO.MinioEndpoint)
	assert.Equal(t, "versions", cfg.MinIO.BucketName)
}

func TestNew_FileNotFound(t *testing.T) {
	td := t.TempDir()
	origWd, _ := os.Getwd()
	defer os.Chdir(origWd)
	require.NoError(t, os.Chdir(td))

	_, err := config.New()
	assert.Error(t, err)
}
