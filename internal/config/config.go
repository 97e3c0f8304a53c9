package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type MongoConfig struct {
	URI         string
	Database    string
	MaxPoolSize int
}

type JWTConfig struct {
	Secret string
}

// AuthConfig carries the login gate settings.
//
// SharedPassword is the single password every user authenticates with.
// It is a deliberate placeholder, not real authentication.
// TODO: replace the shared password with per-user credential hashes once
// the user schema carries credentials.
type AuthConfig struct {
	SharedPassword string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "4000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:    getEnv("MONGODB_DATABASE", "library"),
			MaxPoolSize: getEnvInt("MONGODB_MAX_POOL_SIZE", 20),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Auth: AuthConfig{
			SharedPassword: getEnv("AUTH_PASSWORD", "secret"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	return nil
}

// getEnv reads an environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
