package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverBadger   = "badger"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	LogLevel    string
	Storage     StorageConfig
	Database    DatabaseConfig
	Dictionary  DictionaryConfig
}

// StorageConfig selects the KV backend
type StorageConfig struct {
	Driver     string
	BadgerPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// DictionaryConfig holds lookup client settings
type DictionaryConfig struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := getDuration("DICTIONARY_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cacheSize, err := getInt("LOOKUP_CACHE_SIZE", 256)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("LOOKUP_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", DriverBadger),
			BadgerPath: getEnv("BADGER_PATH", "./data"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "thesaurusrex"),
			User:     getEnv("DB_USER", "thesaurusrex"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Dictionary: DictionaryConfig{
			BaseURL:   getEnv("DICTIONARY_URL", "https://api.dictionaryapi.dev/api/v2/entries/en"),
			Timeout:   timeout,
			CacheSize: cacheSize,
			CacheTTL:  cacheTTL,
		},
	}

	switch cfg.Storage.Driver {
	case DriverBadger:
	case DriverPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	if cfg.Dictionary.CacheSize < 0 {
		return nil, fmt.Errorf("LOOKUP_CACHE_SIZE must not be negative")
	}

	return cfg, nil
}

// ValidateBot checks the settings only the bot needs
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.BotPassword == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
