package ports

import (
	"context"
	"time"
)

// AppConfig represents application configuration
type AppConfig struct {
	BaseURL string
}

// GeocodingConfig represents city search configuration
type GeocodingConfig struct {
	Enabled     bool
	ResultLimit int
	EnableCache bool
	CacheTTL    time.Duration
}

// WeatherConfig represents weather lookup configuration
type WeatherConfig struct {
	Enabled bool
}

// ImageryConfig represents image generation configuration
type ImageryConfig struct {
	Enabled bool
	Models  []string
}

// LandmarkConfig represents landmark suggestion configuration
type LandmarkConfig struct {
	Enabled    bool
	MaxRetries int
	BaseDelay  time.Duration
	CacheTTL   time.Duration
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	SessionTTL        time.Duration
	MinPasswordLength int
	AdminEmails       []string
}

// RequestLimitConfig represents the daily request cap configuration
type RequestLimitConfig struct {
	DailyLimit    int
	PortfolioMode bool
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetAppConfig() AppConfig
	GetGeocodingConfig() GeocodingConfig
	GetWeatherConfig() WeatherConfig
	GetImageryConfig() ImageryConfig
	GetLandmarkConfig() LandmarkConfig
	GetAuthConfig() AuthConfig
	GetRequestLimitConfig() RequestLimitConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Outcomes recorded for calls to external collaborators
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeFallback = "fallback"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cache string)
	RecordCacheMiss(ctx context.Context, cache string)
	RecordExternalCall(ctx context.Context, provider string, outcome string, duration time.Duration)
	RecordRecommendation(ctx context.Context, mood string)
}
