package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	ConfigStore string `env:"CONFIG_STORE" envDefault:"dynamodb"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	PricingConfigTable string `env:"PRICING_CONFIG_TABLE" envDefault:"pricing_config"`

	PostgresURL string `env:"POSTGRES_URL"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	PricingCacheTTL time.Duration `env:"PRICING_CACHE_TTL" envDefault:"10m"`

	PickupTimezone     string        `env:"PICKUP_TIMEZONE" envDefault:"Europe/Stockholm"`
	RoadDistanceFactor float64       `env:"ROAD_DISTANCE_FACTOR" envDefault:"1.2"`
	StartupMaxElapsed  time.Duration `env:"STARTUP_MAX_ELAPSED" envDefault:"1m"`
}

// Load parses the environment. .env files are loaded by the caller through
// godotenv/autoload before this runs.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.ConfigStore {
	case StoreDynamoDB:
	case StorePostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("POSTGRES_URL is required when CONFIG_STORE=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported CONFIG_STORE %q", cfg.ConfigStore)
	}

	if cfg.RoadDistanceFactor <= 0 {
		return nil, fmt.Errorf("ROAD_DISTANCE_FACTOR must be positive, got %v", cfg.RoadDistanceFactor)
	}

	if _, err := time.LoadLocation(cfg.PickupTimezone); err != nil {
		return nil, fmt.Errorf("invalid PICKUP_TIMEZONE %q: %w", cfg.PickupTimezone, err)
	}

	return &cfg, nil
}

// Location returns the pickup-site time zone. Load has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.PickupTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return c.GinMode != "release"
}
