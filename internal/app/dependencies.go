package app

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"sunsip.app/internal/adapters/database"
	"sunsip.app/internal/adapters/external"
	"sunsip.app/internal/adapters/infrastructure"
	"sunsip.app/internal/config"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/logger"
)

// DependencyContainer owns the adapters behind every port and closes them on shutdown
type DependencyContainer struct {
	config     *config.Config
	db         *gorm.DB
	cache      external.CacheBackend
	metrics    *infrastructure.PrometheusMetricsCollector
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// NewDependencyContainer connects to PostgreSQL and builds the adapters
func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return NewDependencyContainerWithDatabase(cfg, db)
}

// NewDependencyContainerWithDatabase builds the adapters over an already opened database
func NewDependencyContainerWithDatabase(cfg *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
		db:     db,
	}

	if err := container.runMigrations(); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	slog.Info("Initializing database connection...", "host", cfg.Host, "name", cfg.Name)

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Database connection established successfully")
	return db, nil
}

func (c *DependencyContainer) runMigrations() error {
	slog.Info("Running database migrations...")

	if err := database.Migrate(c.db); err != nil {
		return err
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	appLogger := c.buildLogger()

	cache, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cache

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	c.metrics = infrastructure.NewPrometheusMetricsCollector(infrastructure.MetricsCollectorConfig{
		CacheStats:     cache,
		ProcessMetrics: true,
	})

	c.ports = &ports.ApplicationPorts{
		CombinationRepository: database.NewCombinationRepositoryAdapter(c.db),
		UserRepository:        database.NewUserRepositoryAdapter(c.db),
		SessionRepository:     database.NewSessionRepositoryAdapter(c.db),
		PasswordHasher:        infrastructure.NewBcryptPasswordHasher(bcrypt.DefaultCost),

		Cache:          cache,
		CacheMetrics:   cache,
		RequestCounter: cache,

		ConfigProvider: configProvider,
		Logger:         appLogger,
		Metrics:        c.metrics,
		Database:       c.db,
	}
	c.initializeProviders(configProvider, appLogger)

	slog.Info("Ports initialized successfully")
	return nil
}

// buildLogger adds the provider log file next to slog when it is enabled
func (c *DependencyContainer) buildLogger() ports.Logger {
	var appLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())
	if !c.config.Logging.FileEnabled {
		return appLogger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath, logger.ParseLevel(c.config.Logging.Level))
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return appLogger
	}

	c.fileLogger = fileLogger
	slog.Info("File logging enabled", "path", c.config.Logging.FilePath)
	return infrastructure.NewMultiLogger(appLogger, fileLogger)
}

// initializeProviders creates only the providers whose credentials are configured;
// the use cases fall back to static data for the others
func (c *DependencyContainer) initializeProviders(configProvider ports.ConfigProvider, appLogger ports.Logger) {
	decorate := c.config.Logging.ProviderCalls

	if configProvider.GetGeocodingConfig().Enabled {
		var provider ports.GeocodingProvider = external.NewCityLookupProviderAdapter(external.CityLookupProviderParams{
			APIKey:  c.config.Geocoding.APIKey,
			BaseURL: c.config.Geocoding.BaseURL,
			Logger:  appLogger,
		})
		if decorate {
			provider = external.NewGeocodingProviderLoggingDecorator(provider, appLogger, c.metrics)
		}
		c.ports.GeocodingProvider = provider
	}

	if configProvider.GetWeatherConfig().Enabled {
		var provider ports.WeatherProvider = external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
			APIKey:  c.config.Weather.APIKey,
			BaseURL: c.config.Weather.BaseURL,
			Logger:  appLogger,
		})
		if decorate {
			provider = external.NewWeatherProviderLoggingDecorator(provider, appLogger, c.metrics)
		}
		c.ports.WeatherProvider = provider
	}

	if configProvider.GetImageryConfig().Enabled {
		c.ports.ImageBackends = external.NewImageBackends(external.ImageBackendsParams{
			APIKey:  c.config.Imagery.APIKey,
			BaseURL: c.config.Imagery.BaseURL,
			Models:  c.config.Imagery.Models,
			Logger:  appLogger,
			Metrics: c.metrics,
		})
	}

	if configProvider.GetLandmarkConfig().Enabled {
		var suggester ports.LandmarkSuggester = external.NewGeminiLandmarkSuggesterAdapter(external.GeminiLandmarkSuggesterParams{
			APIKey:  c.config.Landmark.APIKey,
			BaseURL: c.config.Landmark.BaseURL,
			Model:   c.config.Landmark.Model,
			Logger:  appLogger,
		})
		if decorate {
			suggester = external.NewLandmarkSuggesterLoggingDecorator(suggester, "gemini", appLogger, c.metrics)
		}
		c.ports.LandmarkSuggester = suggester
	}

	slog.Info("External providers configured",
		"geocoding", c.ports.GeocodingProvider != nil,
		"weather", c.ports.WeatherProvider != nil,
		"image_backends", len(c.ports.ImageBackends),
		"landmark", c.ports.LandmarkSuggester != nil)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// PurgeExpiredCache drops expired entries from the in-process cache; Redis expires keys itself
func (c *DependencyContainer) PurgeExpiredCache() int {
	memory, ok := c.cache.(*external.MemoryCacheProvider)
	if !ok {
		return 0
	}
	return memory.PurgeExpired()
}

// Cleanup releases the cache connection, the log file and the database
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if closer, ok := c.cache.(io.Closer); ok {
		keep(closer.Close())
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			keep(db.Close())
		}
	}
	return firstErr
}
