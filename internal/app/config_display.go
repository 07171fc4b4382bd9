package app

import (
	"log/slog"
	"strings"

	"sunsip.app/internal/config"
	"sunsip.app/internal/ports"
)

// logConfiguration writes the effective configuration with secrets masked
func logConfiguration(cfg *config.Config, provider ports.ConfigProvider) {
	slog.Info("Application configuration",
		slog.Group("server",
			"port", cfg.Server.Port,
		),
		slog.Group("database",
			"host", cfg.Database.Host,
			"port", cfg.Database.Port,
			"user", cfg.Database.User,
			"password", maskSecret(cfg.Database.Password),
			"name", cfg.Database.Name,
			"ssl_mode", cfg.Database.SSLMode,
		),
		slog.Group("geocoding",
			"api_key", maskSecret(cfg.Geocoding.APIKey),
			"base_url", cfg.Geocoding.BaseURL,
			"enabled", provider.GetGeocodingConfig().Enabled,
		),
		slog.Group("weather",
			"api_key", maskSecret(cfg.Weather.APIKey),
			"base_url", cfg.Weather.BaseURL,
			"enabled", provider.GetWeatherConfig().Enabled,
		),
		slog.Group("imagery",
			"api_key", maskSecret(cfg.Imagery.APIKey),
			"models", strings.Join(cfg.Imagery.Models, ","),
			"enabled", provider.GetImageryConfig().Enabled,
		),
		slog.Group("landmark",
			"api_key", maskSecret(cfg.Landmark.APIKey),
			"model", cfg.Landmark.Model,
			"enabled", provider.GetLandmarkConfig().Enabled,
		),
		slog.Group("cache",
			"type", cfg.Cache.Type.String(),
			"redis_addr", cfg.Cache.Redis.Addr,
		),
		slog.Group("limits",
			"daily", cfg.RequestLimit.DailyLimit,
			"portfolio_mode", cfg.RequestLimit.PortfolioMode,
		),
		"app_base_url", cfg.AppBaseURL,
	)
}

// maskSecret keeps the first quarter of a secret visible
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}
