package config

import (
	"fmt"
	"strings"
	"time"

	"file-catalog/internal/MinIO"
	"file-catalog/pkg/database/postgres"
	"file-catalog/pkg/database/redis"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config/local.env"

type CatalogConfig struct {
	GRPCPort            string        `env:"GRPC_SERVER_PORT" env-default:"50051"`
	HTTPPort            string        `env:"HTTP_SERVER_PORT" env-default:"8080"`
	JWTSecret           string        `env:"JWT_TOKEN" env-required:"true"`
	TokenTTL            time.Duration `env:"JWT_TTL" env-default:"3h"`
	Admins              []string      `env:"CATALOG_ADMINS" env-separator:","`
	DistributionBaseURL string        `env:"DISTRIBUTION_BASE_URL" env-default:"https://d1234.cloudfront.net/catalog"`
	LogLevel            string        `env:"LOG_LEVEL" env-default:"info"`

	PersistPostgres bool  `env:"CATALOG_PERSIST_POSTGRES" env-default:"false"`
	UseRedis        bool  `env:"CATALOG_USE_REDIS" env-default:"false"`
	UseMinIO        bool  `env:"CATALOG_USE_MINIO" env-default:"false"`
	NotifyHistory   int64 `env:"CATALOG_NOTIFY_HISTORY" env-default:"100"`

	Postgres postgres.Config
	Redis    redis.Config
	MinIO    MinIO.Config
}

// IsAdmin reports whether userID is in the configured admin list.
func (c *CatalogConfig) IsAdmin(userID string) bool {
	for _, a := range c.Admins {
		if strings.TrimSpace(a) == userID {
			return true
		}
	}
	return false
}

func New() (*CatalogConfig, error) {
	return Load(defaultPath)
}

func Load(path string) (*CatalogConfig, error) {
	var cfg CatalogConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read catalog config %s: %w", path, err)
	}
	return &cfg, nil
}
