package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds Iris configuration, loaded once at startup
type Config struct {
	Odds  OddsConfig
	HTTP  HTTPConfig
	Redis RedisConfig
	Cache CacheConfig
}

// OddsConfig configures the upstream odds provider
type OddsConfig struct {
	// The credential is required; startup fails without it
	APIKey  string        `envconfig:"ODDS_API_KEY" required:"true"`
	BaseURL string        `envconfig:"ODDS_API_BASE_URL" default:"https://api.the-odds-api.com"`
	Timeout time.Duration `envconfig:"ODDS_API_TIMEOUT" default:"10s"`
}

// HTTPConfig configures the inbound surface
type HTTPConfig struct {
	Port           string   `envconfig:"HTTP_PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"HTTP_ALLOWED_ORIGINS" default:"*"`
}

// RedisConfig configures the optional shared cache backend.
// An empty Addr selects the in-process cache.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_URL"`
	Password string `envconfig:"REDIS_PASSWORD"`
}

// CacheConfig configures response caching
type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"45s"`
}

// New loads configuration from the environment. A .env file is applied
// first when present (local development); real env vars win.
func New() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
