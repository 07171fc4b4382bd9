package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"sunsip.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 1440
	maxPortNumber       = 65535
	maxImageBackends    = 3
	maxLandmarkRetries  = 10
	minPasswordLength   = 6
	maxGeocodingResults = 20
)

// Config represents the application configuration structure
type Config struct {
	Server       ServerConfig       `split_words:"true"`
	Database     DatabaseConfig     `split_words:"true"`
	Geocoding    GeocodingConfig    `split_words:"true"`
	Weather      WeatherConfig      `split_words:"true"`
	Imagery      ImageryConfig      `split_words:"true"`
	Landmark     LandmarkConfig     `split_words:"true"`
	Auth         AuthConfig         `split_words:"true"`
	Cache        CacheConfig        `split_words:"true"`
	RequestLimit RequestLimitConfig `split_words:"true"`
	Logging      LoggingConfig      `split_words:"true"`
	AppBaseURL   string             `envconfig:"APP_URL" default:"http://localhost:8080"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"sunsip"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// GeocodingConfig configures the city search provider
type GeocodingConfig struct {
	APIKey          string `envconfig:"GEOCODING_API_KEY"`
	BaseURL         string `envconfig:"GEOCODING_API_BASE_URL" default:"https://api.api-ninjas.com/v1"`
	ResultLimit     int    `envconfig:"GEOCODING_RESULT_LIMIT" default:"5"`
	CacheTTLMinutes int    `envconfig:"GEOCODING_CACHE_TTL_MINUTES" default:"60"`
	EnableCache     bool   `envconfig:"GEOCODING_ENABLE_CACHE" default:"true"`
}

// WeatherConfig configures the forecast provider
type WeatherConfig struct {
	APIKey  string `envconfig:"WEATHER_API_KEY"`
	BaseURL string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	// Keyless enables the free endpoint, which needs no credential
	Keyless bool   `envconfig:"WEATHER_KEYLESS" default:"false"`
}

// ImageryConfig configures the city image generation backends
type ImageryConfig struct {
	APIKey  string   `envconfig:"IMAGE_API_KEY"`
	BaseURL string   `envconfig:"IMAGE_API_BASE_URL" default:"https://api.replicate.com/v1"`
	Models  []string `envconfig:"IMAGE_MODELS" default:"flux-schnell,sdxl-lightning,stable-diffusion"`
}

// LandmarkConfig configures the landmark text-suggestion service
type LandmarkConfig struct {
	APIKey          string `envconfig:"LANDMARK_API_KEY"`
	BaseURL         string `envconfig:"LANDMARK_API_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model           string `envconfig:"LANDMARK_MODEL" default:"gemini-1.5-flash"`
	MaxRetries      int    `envconfig:"LANDMARK_MAX_RETRIES" default:"3"`
	BaseDelayMillis int    `envconfig:"LANDMARK_BASE_DELAY_MS" default:"1000"`
	CacheTTLMinutes int    `envconfig:"LANDMARK_CACHE_TTL_MINUTES" default:"1440"`
}

// AuthConfig configures sessions and password rules
type AuthConfig struct {
	SessionTTLHours   int      `envconfig:"AUTH_SESSION_TTL_HOURS" default:"168"`
	MinPasswordLength int      `envconfig:"AUTH_MIN_PASSWORD_LENGTH" default:"6"`
	AdminEmails       []string `envconfig:"AUTH_ADMIN_EMAILS"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// RequestLimitConfig configures the daily recommendation cap
type RequestLimitConfig struct {
	DailyLimit    int  `envconfig:"REQUEST_LIMIT_DAILY" default:"10"`
	PortfolioMode bool `envconfig:"PORTFOLIO_MODE" default:"false"`
}

// LoggingConfig configures process and provider logging
type LoggingConfig struct {
	Level         string `envconfig:"LOG_LEVEL" default:"info"`
	Format        string `envconfig:"LOG_FORMAT" default:"json"`
	// ProviderCalls wraps every external provider in a logging decorator
	ProviderCalls bool   `envconfig:"PROVIDER_LOGGING" default:"true"`
	FilePath      string `envconfig:"PROVIDER_LOG_FILE_PATH" default:"logs/providers.log"`
	FileEnabled   bool   `envconfig:"PROVIDER_LOG_FILE_ENABLED" default:"false"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Imagery.Validate(); err != nil {
		return err
	}
	if err := c.Landmark.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.RequestLimit.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := validateURL("APP_URL", c.AppBaseURL); err != nil {
		return err
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Missing API keys are allowed everywhere below: the providers fall back to
// static or synthetic data when a credential is absent.

func (g *GeocodingConfig) Validate() error {
	if err := validateURL("GEOCODING_API_BASE_URL", g.BaseURL); err != nil {
		return err
	}
	if g.ResultLimit < 1 || g.ResultLimit > maxGeocodingResults {
		return errors.NewConfigurationError("GEOCODING_RESULT_LIMIT must be between 1 and 20", nil)
	}
	if g.CacheTTLMinutes < 1 || g.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("GEOCODING_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	return validateURL("WEATHER_API_BASE_URL", w.BaseURL)
}

func (i *ImageryConfig) Validate() error {
	if err := validateURL("IMAGE_API_BASE_URL", i.BaseURL); err != nil {
		return err
	}
	if len(i.Models) == 0 || len(i.Models) > maxImageBackends {
		return errors.NewConfigurationError("IMAGE_MODELS must list between 1 and 3 models", nil)
	}
	for _, model := range i.Models {
		if strings.TrimSpace(model) == "" {
			return errors.NewConfigurationError("IMAGE_MODELS cannot contain empty model names", nil)
		}
	}
	return nil
}

func (l *LandmarkConfig) Validate() error {
	if err := validateURL("LANDMARK_API_BASE_URL", l.BaseURL); err != nil {
		return err
	}
	if l.MaxRetries < 0 || l.MaxRetries > maxLandmarkRetries {
		return errors.NewConfigurationError("LANDMARK_MAX_RETRIES must be between 0 and 10", nil)
	}
	if l.BaseDelayMillis < 1 {
		return errors.NewConfigurationError("LANDMARK_BASE_DELAY_MS must be positive", nil)
	}
	if l.CacheTTLMinutes < 1 {
		return errors.NewConfigurationError("LANDMARK_CACHE_TTL_MINUTES must be positive", nil)
	}
	return nil
}

func (a *AuthConfig) Validate() error {
	if a.SessionTTLHours < 1 {
		return errors.NewConfigurationError("AUTH_SESSION_TTL_HOURS must be at least 1 hour", nil)
	}
	if a.MinPasswordLength < minPasswordLength {
		return errors.NewConfigurationError("AUTH_MIN_PASSWORD_LENGTH must be at least 6", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (r *RequestLimitConfig) Validate() error {
	if r.DailyLimit < 1 {
		return errors.NewConfigurationError("REQUEST_LIMIT_DAILY must be at least 1", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	if l.FileEnabled && l.FilePath == "" {
		return errors.NewConfigurationError("PROVIDER_LOG_FILE_PATH cannot be empty when file logging is enabled", nil)
	}
	return nil
}
