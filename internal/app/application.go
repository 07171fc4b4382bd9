package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"sunsip.app/internal/adapters/api"
	"sunsip.app/internal/adapters/infrastructure"
	"sunsip.app/internal/config"
	"sunsip.app/internal/core/account"
	"sunsip.app/internal/core/city"
	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/combination"
	"sunsip.app/internal/core/imagery"
	"sunsip.app/internal/core/recommendation"
	"sunsip.app/internal/core/session"
	"sunsip.app/internal/core/weather"
	"sunsip.app/internal/ports"
)

const (
	maintenanceInterval = 10 * time.Minute
	// client state untouched for this long is dropped from memory
	sessionIdleTimeout = 24 * time.Hour
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	cityUseCase           *city.UseCase
	weatherUseCase        *weather.UseCase
	imageryUseCase        *imagery.UseCase
	cocktailUseCase       *cocktail.UseCase
	recommendationUseCase *recommendation.UseCase
	accountUseCase        *account.UseCase
	combinationUseCase    *combination.UseCase
	limiter               *account.Limiter
	sessions              *session.Registry

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	// Infrastructure
	ports *ports.ApplicationPorts
}

func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application over a prepared container (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	var err error
	a.cityUseCase, err = city.NewUseCase(city.UseCaseDependencies{
		Provider: a.ports.GeocodingProvider,
		Cache:    a.ports.Cache,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create city use case: %w", err)
	}

	a.weatherUseCase, err = weather.NewUseCase(weather.UseCaseDependencies{
		Provider: a.ports.WeatherProvider,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}

	a.imageryUseCase, err = imagery.NewUseCase(imagery.UseCaseDependencies{
		Backends:  a.ports.ImageBackends,
		Landmarks: a.ports.LandmarkSuggester,
		Cache:     a.ports.Cache,
		Config:    a.ports.ConfigProvider,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create imagery use case: %w", err)
	}

	a.cocktailUseCase, err = cocktail.NewUseCase(cocktail.UseCaseDependencies{
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create cocktail use case: %w", err)
	}

	a.sessions = session.NewRegistry(nil)
	a.recommendationUseCase, err = recommendation.NewUseCase(recommendation.UseCaseDependencies{
		Weather:   a.weatherUseCase,
		Images:    a.imageryUseCase,
		Cocktails: a.cocktailUseCase,
		Sessions:  a.sessions,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create recommendation use case: %w", err)
	}

	a.accountUseCase, err = account.NewUseCase(account.UseCaseDependencies{
		Users:    a.ports.UserRepository,
		Sessions: a.ports.SessionRepository,
		Hasher:   a.ports.PasswordHasher,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create account use case: %w", err)
	}

	a.limiter, err = account.NewLimiter(account.LimiterDependencies{
		Counter: a.ports.RequestCounter,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create request limiter: %w", err)
	}

	a.combinationUseCase, err = combination.NewUseCase(combination.UseCaseDependencies{
		Repository: a.ports.CombinationRepository,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create combination use case: %w", err)
	}

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	db, ok := a.ports.Database.(*gorm.DB)
	if !ok {
		return fmt.Errorf("database port must be a *gorm.DB, got %T", a.ports.Database)
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:  infrastructure.NewDatabaseHealthChecker(db),
		CacheChecker:     infrastructure.NewCacheHealthChecker(a.config.Cache.Type.String(), a.ports.Cache, a.ports.CacheMetrics),
		ProvidersChecker: infrastructure.NewProvidersHealthChecker(a.ports.ConfigProvider),
		ConfigProvider:   a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		CityUseCase:           a.cityUseCase,
		WeatherUseCase:        a.weatherUseCase,
		CocktailUseCase:       a.cocktailUseCase,
		RecommendationUseCase: a.recommendationUseCase,
		AccountUseCase:        a.accountUseCase,
		CombinationUseCase:    a.combinationUseCase,
		Limiter:               a.limiter,
		Sessions:              a.sessions,
		HealthChecker:         systemHealthChecker,
		MetricsCollector:      a.deps.Metrics(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP and runs periodic maintenance until ctx is cancelled
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")
	logConfiguration(a.config, a.ports.ConfigProvider)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpAdapter.Start(gctx)
	})
	g.Go(func() error {
		a.runMaintenance(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) runMaintenance(ctx context.Context) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Maintenance stopped")
			return
		case <-ticker.C:
			a.Maintain(ctx)
		}
	}
}

// Maintain removes expired sign-in sessions, idle client state and expired cache entries
func (a *Application) Maintain(ctx context.Context) {
	removed, err := a.accountUseCase.CleanupExpiredSessions(ctx)
	if err != nil {
		slog.Error("Error cleaning up expired sessions", "error", err)
	}

	evicted := a.sessions.EvictIdle(sessionIdleTimeout)
	purged := a.deps.PurgeExpiredCache()

	slog.Debug("Maintenance completed",
		"expired_sessions", removed,
		"idle_clients", evicted,
		"cache_entries", purged)
}

// Shutdown releases the database, cache and log file; the HTTP server stops with the Start context
func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
		return fmt.Errorf("release resources: %w", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// Sessions returns the in-memory client state registry
func (a *Application) Sessions() *session.Registry {
	return a.sessions
}
