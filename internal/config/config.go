package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDriver       string `yaml:"db_driver"`
	DBHost         string `yaml:"db_host"`
	DBPort         string `yaml:"db_port"`
	DBUser         string `yaml:"db_user"`
	DBPassword     string `yaml:"db_password"`
	DBName         string `yaml:"db_name"`
	RedisHost      string `yaml:"redis_host"`
	RedisPort      string `yaml:"redis_port"`
	SessionSecret  string `yaml:"session_secret"`
	GinMode        string `yaml:"gin_mode"`
	OpenAIAPIKey   string `yaml:"openai_api_key"`
	ServerPort     string `yaml:"server_port"`
	Timezone       string `yaml:"timezone"`
	ProtectedAdmin string `yaml:"protected_admin"`
}

// Load reads the optional YAML file named by CONFIG_FILE (default
// config.yaml) and then applies environment overrides and defaults.
func Load() (*Config, error) {
	return LoadFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadFile is Load with an explicit file path. A missing file is not an
// error.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.DBDriver = getEnv("DB_DRIVER", orDefault(cfg.DBDriver, "mysql"))
	cfg.DBHost = getEnv("DB_HOST", orDefault(cfg.DBHost, "localhost"))
	cfg.DBPort = getEnv("DB_PORT", orDefault(cfg.DBPort, defaultDBPort(cfg.DBDriver)))
	cfg.DBUser = getEnv("DB_USER", orDefault(cfg.DBUser, "migration"))
	cfg.DBPassword = getEnv("DB_PASSWORD", orDefault(cfg.DBPassword, "migrationpassword"))
	cfg.DBName = getEnv("DB_NAME", orDefault(cfg.DBName, "migration_tracker"))
	cfg.RedisHost = getEnv("REDIS_HOST", orDefault(cfg.RedisHost, "localhost"))
	cfg.RedisPort = getEnv("REDIS_PORT", orDefault(cfg.RedisPort, "6379"))
	cfg.SessionSecret = getEnv("SESSION_SECRET", orDefault(cfg.SessionSecret, "default-secret-key-change-me"))
	cfg.GinMode = getEnv("GIN_MODE", orDefault(cfg.GinMode, "debug"))
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.ServerPort = getEnv("SERVER_PORT", orDefault(cfg.ServerPort, "8080"))
	cfg.Timezone = getEnv("TIMEZONE", orDefault(cfg.Timezone, "UTC"))
	cfg.ProtectedAdmin = getEnv("PROTECTED_ADMIN", cfg.ProtectedAdmin)

	return cfg, nil
}

// Location resolves Timezone. An unknown name yields UTC and the lookup
// error so the caller can report it.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
