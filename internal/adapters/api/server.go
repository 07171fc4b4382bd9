// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"sunsip.app/internal/core/account"
	"sunsip.app/internal/core/city"
	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/combination"
	"sunsip.app/internal/core/recommendation"
	"sunsip.app/internal/core/session"
	"sunsip.app/internal/core/weather"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router                *gin.Engine
	config                ServerConfig
	cityUseCase           CityUseCase
	weatherUseCase        WeatherUseCase
	cocktailUseCase       CocktailUseCase
	recommendationUseCase RecommendationUseCase
	accountUseCase        AccountUseCase
	combinationUseCase    CombinationUseCase
	limiter               RequestLimiter
	sessions              SessionStore
	healthChecker         ports.SystemHealthChecker
	metricsCollector      MetricsCollector
}

// Use case interfaces that the HTTP adapter depends on
type CityUseCase interface {
	SearchCities(ctx context.Context, query string) []city.CityOption
}

type WeatherUseCase interface {
	GetWeather(ctx context.Context, request weather.Request) weather.Snapshot
}

type CocktailUseCase interface {
	SelectCocktail(ctx context.Context, request cocktail.Request) cocktail.Cocktail
	Catalog() []cocktail.Cocktail
}

type RecommendationUseCase interface {
	SelectCity(ctx context.Context, sessionKey string, option city.CityOption) (*recommendation.Outcome, error)
}

type AccountUseCase interface {
	SignUp(ctx context.Context, credentials account.Credentials) (*account.AuthResult, error)
	SignIn(ctx context.Context, credentials account.Credentials) (*account.AuthResult, error)
	Authenticate(ctx context.Context, token string) (*account.User, error)
	SignOut(ctx context.Context, token string) error
}

type CombinationUseCase interface {
	Save(ctx context.Context, userID string, request combination.SaveRequest) (*combination.Combination, error)
	List(ctx context.Context, userID string) ([]*combination.Combination, error)
	Delete(ctx context.Context, userID string, id uint) error
	Rate(ctx context.Context, userID string, id uint, request combination.RateRequest) (*combination.Combination, error)
	RecordAccess(ctx context.Context, userID string, id uint) (*combination.Combination, error)
}

type RequestLimiter interface {
	CheckAndConsume(ctx context.Context, subject account.Subject) (account.LimitStatus, error)
	Status(ctx context.Context, subject account.Subject) (account.LimitStatus, error)
}

type SessionStore interface {
	Get(key string) *session.Container
	Remove(key string)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
	Handler() http.Handler
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config                ServerConfig
	CityUseCase           CityUseCase
	WeatherUseCase        WeatherUseCase
	CocktailUseCase       CocktailUseCase
	RecommendationUseCase RecommendationUseCase
	AccountUseCase        AccountUseCase
	CombinationUseCase    CombinationUseCase
	Limiter               RequestLimiter
	Sessions              SessionStore
	HealthChecker         ports.SystemHealthChecker
	MetricsCollector      MetricsCollector
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &HTTPServerAdapter{
		router:                router,
		config:                opts.Config,
		cityUseCase:           opts.CityUseCase,
		weatherUseCase:        opts.WeatherUseCase,
		cocktailUseCase:       opts.CocktailUseCase,
		recommendationUseCase: opts.RecommendationUseCase,
		accountUseCase:        opts.AccountUseCase,
		combinationUseCase:    opts.CombinationUseCase,
		limiter:               opts.Limiter,
		sessions:              opts.Sessions,
		healthChecker:         opts.HealthChecker,
		metricsCollector:      opts.MetricsCollector,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.CityUseCase == nil {
		return errors.NewValidationError("city use case is required")
	}
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.CocktailUseCase == nil {
		return errors.NewValidationError("cocktail use case is required")
	}
	if opts.RecommendationUseCase == nil {
		return errors.NewValidationError("recommendation use case is required")
	}
	if opts.AccountUseCase == nil {
		return errors.NewValidationError("account use case is required")
	}
	if opts.CombinationUseCase == nil {
		return errors.NewValidationError("combination use case is required")
	}
	if opts.Limiter == nil {
		return errors.NewValidationError("request limiter is required")
	}
	if opts.Sessions == nil {
		return errors.NewValidationError("session store is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	api.Use(s.identify())
	{
		api.GET("/cities", s.searchCities)
		api.GET("/weather", s.getWeather)
		api.GET("/cocktail", s.selectCocktail)
		api.GET("/cocktails", s.listCocktails)

		api.POST("/recommendations", s.createRecommendation)
		api.GET("/state", s.getState)
		api.GET("/limits", s.getLimits)

		auth := api.Group("/auth")
		auth.POST("/signup", s.signUp)
		auth.POST("/signin", s.signIn)
		auth.POST("/signout", s.signOut)
		auth.GET("/session", s.requireAuth(), s.getSession)

		combinations := api.Group("/combinations", s.requireAuth())
		combinations.GET("", s.listCombinations)
		combinations.POST("", s.saveCombination)
		combinations.PATCH("/:id", s.rateCombination)
		combinations.POST("/:id/access", s.recordCombinationAccess)
		combinations.DELETE("/:id", s.deleteCombination)

		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsCollector.Handler()))
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", s.config.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// requestLogger logs one line per request through slog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
