package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port            string
	JWTSecret       string
	MongoDBURI      string
	MongoDBPassword string
	RedisAddr       string
	Environment     string
	LogLevel        string
	AllowedOrigin   string
}

// LoadConfig reads the environment. Mongo and Redis are optional: when
// their addresses are absent the server falls back to the seeded
// in-memory stores, which is the normal mode for this mocked backend.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		AllowedOrigin:   getEnvWithDefault("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
