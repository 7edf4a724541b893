package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv   string `split_words:"true" default:"dev"`
	LogLevel string `split_words:"true" default:"info"`

	HTTPPort int `split_words:"true" default:"8080"`

	// StoreBackend selects the slot store: memory, file or redis.
	StoreBackend string `split_words:"true" default:"memory"`
	StoreDir     string `split_words:"true" default:"./data"`

	RedisURL          string `split_words:"true"`
	RedisReadTimeout  int    `split_words:"true" default:"3"`
	RedisWriteTimeout int    `split_words:"true" default:"3"`
	RedisDialTimeout  int    `split_words:"true" default:"5"`

	JWTSecret     string `split_words:"true" default:"storefront-dev-secret"`
	JWTTTLMinutes int    `split_words:"true" default:"60"`

	StripeKey string `split_words:"true"`

	// CatalogSeedURL is fetched once when the products slot is empty.
	CatalogSeedURL string `split_words:"true"`
}

func Load() (Config, error) {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
