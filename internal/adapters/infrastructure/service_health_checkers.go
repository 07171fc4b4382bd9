package infrastructure

import (
	"context"

	"sunsip.app/internal/ports"
)

// Pinger is implemented by cache backends that live out of process
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker implements cache health checking
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
	stats     ports.CacheMetrics
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider, stats ports.CacheMetrics) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache, stats: stats}
}

// Check pings remote caches; in-process caches are always reachable
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = statusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	if c.stats != nil {
		stats := c.stats.GetStats()
		status.Details["hit_ratio"] = stats.HitRatio
		status.Details["total_ops"] = stats.TotalOps
	}

	return status
}

// ProvidersHealthChecker reports which external providers run live and which fall back
type ProvidersHealthChecker struct {
	config ports.ConfigProvider
}

// NewProvidersHealthChecker creates a new external providers health checker
func NewProvidersHealthChecker(config ports.ConfigProvider) *ProvidersHealthChecker {
	return &ProvidersHealthChecker{config: config}
}

// Check never fails: a provider without credentials is served by its fallback, which only degrades output
func (p *ProvidersHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "providers",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if p.config == nil {
		status.Status = statusUnhealthy
		status.Error = "configuration is not available"
		return status
	}

	modes := map[string]bool{
		"geocoding": p.config.GetGeocodingConfig().Enabled,
		"weather":   p.config.GetWeatherConfig().Enabled,
		"imagery":   p.config.GetImageryConfig().Enabled,
		"landmark":  p.config.GetLandmarkConfig().Enabled,
	}
	for name, live := range modes {
		if live {
			status.Details[name] = "live"
			continue
		}
		status.Details[name] = "fallback"
		status.Status = statusDegraded
	}

	return status
}
