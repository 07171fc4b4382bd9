package infrastructure

import (
	"time"

	"sunsip.app/internal/config"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/validation"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		BaseURL: c.config.AppBaseURL,
	}
}

// GetGeocodingConfig returns city search configuration
func (c *ConfigProviderAdapter) GetGeocodingConfig() ports.GeocodingConfig {
	return ports.GeocodingConfig{
		Enabled:     validation.IsConfiguredKey(c.config.Geocoding.APIKey),
		ResultLimit: c.config.Geocoding.ResultLimit,
		EnableCache: c.config.Geocoding.EnableCache,
		CacheTTL:    time.Duration(c.config.Geocoding.CacheTTLMinutes) * time.Minute,
	}
}

// GetWeatherConfig returns weather configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		Enabled: c.config.Weather.Keyless || validation.IsConfiguredKey(c.config.Weather.APIKey),
	}
}

// GetImageryConfig returns image generation configuration
func (c *ConfigProviderAdapter) GetImageryConfig() ports.ImageryConfig {
	return ports.ImageryConfig{
		Enabled: validation.IsConfiguredKey(c.config.Imagery.APIKey),
		Models:  c.config.Imagery.Models,
	}
}

// GetLandmarkConfig returns landmark suggestion configuration
func (c *ConfigProviderAdapter) GetLandmarkConfig() ports.LandmarkConfig {
	return ports.LandmarkConfig{
		Enabled:    validation.IsConfiguredKey(c.config.Landmark.APIKey),
		MaxRetries: c.config.Landmark.MaxRetries,
		BaseDelay:  time.Duration(c.config.Landmark.BaseDelayMillis) * time.Millisecond,
		CacheTTL:   time.Duration(c.config.Landmark.CacheTTLMinutes) * time.Minute,
	}
}

// GetAuthConfig returns authentication configuration
func (c *ConfigProviderAdapter) GetAuthConfig() ports.AuthConfig {
	return ports.AuthConfig{
		SessionTTL:        time.Duration(c.config.Auth.SessionTTLHours) * time.Hour,
		MinPasswordLength: c.config.Auth.MinPasswordLength,
		AdminEmails:       c.config.Auth.AdminEmails,
	}
}

// GetRequestLimitConfig returns the daily request cap configuration
func (c *ConfigProviderAdapter) GetRequestLimitConfig() ports.RequestLimitConfig {
	return ports.RequestLimitConfig{
		DailyLimit:    c.config.RequestLimit.DailyLimit,
		PortfolioMode: c.config.RequestLimit.PortfolioMode,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}
