package config

import (
	"fmt"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string `env:"SERVER_PORT" envDefault:"8080"`
	MySQLDSN       string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/pokevault?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass      string `env:"REDIS_PASSWORD"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"change-me"`
	CatalogBaseURL string `env:"CATALOG_BASE_URL" envDefault:"https://pokeapi.co/api/v2"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load builds Config from the environment, reading a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
