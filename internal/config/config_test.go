package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sunsip.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "localhost", config.Database.Host)
		assert.Equal(t, 5432, config.Database.Port)
		assert.Equal(t, "sunsip", config.Database.Name)
		assert.Equal(t, "disable", config.Database.SSLMode)
		assert.Empty(t, config.Geocoding.APIKey)
		assert.Equal(t, 5, config.Geocoding.ResultLimit)
		assert.Equal(t, "https://api.open-meteo.com/v1", config.Weather.BaseURL)
		assert.Equal(t, []string{"flux-schnell", "sdxl-lightning", "stable-diffusion"}, config.Imagery.Models)
		assert.Equal(t, 3, config.Landmark.MaxRetries)
		assert.Equal(t, 1000, config.Landmark.BaseDelayMillis)
		assert.Equal(t, 10, config.RequestLimit.DailyLimit)
		assert.False(t, config.RequestLimit.PortfolioMode)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "http://localhost:8080", config.AppBaseURL)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("DB_HOST", "test-db-host"))
		require.NoError(t, os.Setenv("DB_SSL_MODE", "require"))
		require.NoError(t, os.Setenv("GEOCODING_API_KEY", "geo-key"))
		require.NoError(t, os.Setenv("WEATHER_API_KEY", "weather-key"))
		require.NoError(t, os.Setenv("IMAGE_MODELS", "model-a,model-b"))
		require.NoError(t, os.Setenv("LANDMARK_MAX_RETRIES", "2"))
		require.NoError(t, os.Setenv("AUTH_ADMIN_EMAILS", "admin@sunsip.app,owner@sunsip.app"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6379"))
		require.NoError(t, os.Setenv("REQUEST_LIMIT_DAILY", "25"))
		require.NoError(t, os.Setenv("PORTFOLIO_MODE", "true"))
		require.NoError(t, os.Setenv("APP_URL", "https://sunsip.example.org"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "test-db-host", config.Database.Host)
		assert.Equal(t, "require", config.Database.SSLMode)
		assert.Equal(t, "geo-key", config.Geocoding.APIKey)
		assert.Equal(t, "weather-key", config.Weather.APIKey)
		assert.Equal(t, []string{"model-a", "model-b"}, config.Imagery.Models)
		assert.Equal(t, 2, config.Landmark.MaxRetries)
		assert.Equal(t, []string{"admin@sunsip.app", "owner@sunsip.app"}, config.Auth.AdminEmails)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, 25, config.RequestLimit.DailyLimit)
		assert.True(t, config.RequestLimit.PortfolioMode)
		assert.Equal(t, "https://sunsip.example.org", config.AppBaseURL)
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("CACHE_TYPE", "memcached"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "CACHE_TYPE must be one of")
	})

	t.Run("GetDSN", func(t *testing.T) {
		dbConfig := DatabaseConfig{
			Host:     "test-host",
			Port:     5432,
			User:     "test-user",
			Password: "test-password",
			Name:     "test-db",
			SSLMode:  "disable",
		}

		expectedDSN := "host=test-host port=5432 user=test-user password=test-password dbname=test-db sslmode=disable"
		assert.Equal(t, expectedDSN, dbConfig.GetDSN())
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:       ServerConfig{Port: 8080},
			Database:     DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", Name: "sunsip", SSLMode: "disable"},
			Geocoding:    GeocodingConfig{BaseURL: "https://geo.example.org", ResultLimit: 5, CacheTTLMinutes: 60},
			Weather:      WeatherConfig{BaseURL: "https://weather.example.org"},
			Imagery:      ImageryConfig{BaseURL: "https://images.example.org", Models: []string{"a"}},
			Landmark:     LandmarkConfig{BaseURL: "https://text.example.org", MaxRetries: 3, BaseDelayMillis: 1000, CacheTTLMinutes: 60},
			Auth:         AuthConfig{SessionTTLHours: 24, MinPasswordLength: 6},
			Cache:        CacheConfig{Type: CacheTypeMemory},
			RequestLimit: RequestLimitConfig{DailyLimit: 10},
			Logging:      LoggingConfig{Level: "info", Format: "json"},
			AppBaseURL:   "http://localhost:8080",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "BadPort", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "SERVER_PORT"},
		{name: "BadSSLMode", mutate: func(c *Config) { c.Database.SSLMode = "prefer" }, wantErr: "DB_SSL_MODE"},
		{name: "TooManyImageModels", mutate: func(c *Config) { c.Imagery.Models = []string{"a", "b", "c", "d"} }, wantErr: "IMAGE_MODELS"},
		{name: "NegativeRetries", mutate: func(c *Config) { c.Landmark.MaxRetries = -1 }, wantErr: "LANDMARK_MAX_RETRIES"},
		{name: "ShortPasswords", mutate: func(c *Config) { c.Auth.MinPasswordLength = 3 }, wantErr: "AUTH_MIN_PASSWORD_LENGTH"},
		{name: "ZeroDailyLimit", mutate: func(c *Config) { c.RequestLimit.DailyLimit = 0 }, wantErr: "REQUEST_LIMIT_DAILY"},
		{name: "RedisWithoutAddr", mutate: func(c *Config) {
			c.Cache.Type = CacheTypeRedis
			c.Cache.Redis = RedisConfig{DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
		}, wantErr: "REDIS_ADDR"},
		{name: "BadLogLevel", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: "LOG_LEVEL"},
		{name: "BadAppURL", mutate: func(c *Config) { c.AppBaseURL = "localhost" }, wantErr: "APP_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCacheType(t *testing.T) {
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("other"))
	assert.False(t, CacheTypeUnknown.IsValid())

	var ct CacheType
	require.NoError(t, ct.UnmarshalText([]byte("redis")))
	assert.Equal(t, CacheTypeRedis, ct)

	text, err := ct.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "redis", string(text))
}
