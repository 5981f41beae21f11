package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BOT_TOKEN", "BOT_PASSWORD", "LOG_LEVEL",
	"STORAGE_DRIVER", "BADGER_PATH",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"DICTIONARY_URL", "DICTIONARY_TIMEOUT", "LOOKUP_CACHE_SIZE", "LOOKUP_CACHE_TTL",
}

// clearEnv blanks every config variable for the test; getEnv treats empty as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverBadger, cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.BadgerPath)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "thesaurusrex", cfg.Database.Name)
	assert.Equal(t, "thesaurusrex", cfg.Database.User)
	assert.Equal(t, "https://api.dictionaryapi.dev/api/v2/entries/en", cfg.Dictionary.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Dictionary.Timeout)
	assert.Equal(t, 256, cfg.Dictionary.CacheSize)
	assert.Equal(t, time.Hour, cfg.Dictionary.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DICTIONARY_TIMEOUT", "3s")
	t.Setenv("LOOKUP_CACHE_SIZE", "0")
	t.Setenv("LOOKUP_CACHE_TTL", "15m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 3*time.Second, cfg.Dictionary.Timeout)
	assert.Equal(t, 0, cfg.Dictionary.CacheSize)
	assert.Equal(t, 15*time.Minute, cfg.Dictionary.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "postgres without password",
			env:     map[string]string{"STORAGE_DRIVER": "postgres"},
			wantErr: "DB_PASSWORD",
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORAGE_DRIVER": "sqlite"},
			wantErr: "STORAGE_DRIVER",
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"DICTIONARY_TIMEOUT": "soon"},
			wantErr: "DICTIONARY_TIMEOUT",
		},
		{
			name:    "zero ttl",
			env:     map[string]string{"LOOKUP_CACHE_TTL": "0s"},
			wantErr: "LOOKUP_CACHE_TTL",
		},
		{
			name:    "bad cache size",
			env:     map[string]string{"LOOKUP_CACHE_SIZE": "many"},
			wantErr: "LOOKUP_CACHE_SIZE",
		},
		{
			name:    "negative cache size",
			env:     map[string]string{"LOOKUP_CACHE_SIZE": "-1"},
			wantErr: "LOOKUP_CACHE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateBot(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "missing token", cfg: Config{BotPassword: "pw"}, wantErr: "BOT_TOKEN"},
		{name: "missing password", cfg: Config{BotToken: "token"}, wantErr: "BOT_PASSWORD"},
		{name: "complete", cfg: Config{BotToken: "token", BotPassword: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateBot()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
