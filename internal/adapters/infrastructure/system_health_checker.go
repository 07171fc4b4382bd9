package infrastructure

import (
	"context"
	"sync"

	"sunsip.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker  ports.HealthChecker
	CacheChecker     ports.HealthChecker
	ProvidersChecker ports.HealthChecker
	ConfigProvider   ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}
	if config.ProvidersChecker != nil {
		checkers["providers"] = config.ProvidersChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every component check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	var (
		mutex sync.Mutex
		wg    sync.WaitGroup
	)
	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mutex.Lock()
			results[name] = status
			mutex.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.configProvider != nil {
		limits := s.configProvider.GetRequestLimitConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"appBaseURL":    s.configProvider.GetAppConfig().BaseURL,
				"cacheType":     s.configProvider.GetCacheConfig().Type,
				"dailyLimit":    limits.DailyLimit,
				"portfolioMode": limits.PortfolioMode,
			},
		}
	}

	return results
}

// IsHealthy reports whether no component is unhealthy; degraded components still serve
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == statusUnhealthy {
			return false
		}
	}
	return true
}
