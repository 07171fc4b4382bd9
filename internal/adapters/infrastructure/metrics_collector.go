package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const (
	metricCacheHits       = "sunsip_cache_hits_total"
	metricCacheMisses     = "sunsip_cache_misses_total"
	metricExternalCalls   = "sunsip_external_calls_total"
	metricExternalLatency = "sunsip_external_call_duration_seconds"
	metricRecommendations = "sunsip_recommendations_total"
	metricCacheHitRatio   = "sunsip_cache_hit_ratio"
)

// PrometheusMetricsCollector implements the MetricsCollector port on a private registry
type PrometheusMetricsCollector struct {
	registry        *prometheus.Registry
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	externalCalls   *prometheus.CounterVec
	externalLatency *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	cacheStats      ports.CacheMetrics
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	// CacheStats exposes the cache backend's own counters; optional
	CacheStats ports.CacheMetrics
	// ProcessMetrics adds the Go runtime and process collectors
	ProcessMetrics bool
}

// NewPrometheusMetricsCollector creates a collector with its own registry
func NewPrometheusMetricsCollector(config MetricsCollectorConfig) *PrometheusMetricsCollector {
	m := &PrometheusMetricsCollector{
		registry: prometheus.NewRegistry(),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricCacheHits,
			Help: "The total number of cache hits",
		}, []string{"cache"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricCacheMisses,
			Help: "The total number of cache misses",
		}, []string{"cache"}),
		externalCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricExternalCalls,
			Help: "Calls to external providers by outcome",
		}, []string{"provider", "outcome"}),
		externalLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricExternalLatency,
			Help:    "External provider call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricRecommendations,
			Help: "Cocktail recommendations served by mood",
		}, []string{"mood"}),
		cacheStats: config.CacheStats,
	}

	m.registry.MustRegister(m.cacheHits, m.cacheMisses, m.externalCalls, m.externalLatency, m.recommendations)

	if m.cacheStats != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: metricCacheHitRatio,
			Help: "Cache hit ratio (hits/total lookups)",
		}, func() float64 {
			return m.cacheStats.GetStats().HitRatio
		}))
	}

	if config.ProcessMetrics {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context, cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context, cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// RecordExternalCall counts the call; durations are observed only for calls that reached the provider
func (m *PrometheusMetricsCollector) RecordExternalCall(ctx context.Context, provider string, outcome string, duration time.Duration) {
	m.externalCalls.WithLabelValues(provider, outcome).Inc()
	if outcome != ports.OutcomeFallback {
		m.externalLatency.WithLabelValues(provider).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetricsCollector) RecordRecommendation(ctx context.Context, mood string) {
	m.recommendations.WithLabelValues(mood).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// GetMetrics summarizes the registry as a JSON friendly map
func (m *PrometheusMetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeUnknown, "failed to gather metrics", err)
	}

	cacheLookups := map[string]map[string]float64{}
	externalCalls := map[string]map[string]float64{}
	recommendations := map[string]float64{}

	for _, family := range families {
		switch family.GetName() {
		case metricCacheHits:
			for _, metric := range family.GetMetric() {
				addNested(cacheLookups, labelValue(metric, "cache"), "hits", metric.GetCounter().GetValue())
			}
		case metricCacheMisses:
			for _, metric := range family.GetMetric() {
				addNested(cacheLookups, labelValue(metric, "cache"), "misses", metric.GetCounter().GetValue())
			}
		case metricExternalCalls:
			for _, metric := range family.GetMetric() {
				addNested(externalCalls, labelValue(metric, "provider"), labelValue(metric, "outcome"), metric.GetCounter().GetValue())
			}
		case metricRecommendations:
			for _, metric := range family.GetMetric() {
				recommendations[labelValue(metric, "mood")] += metric.GetCounter().GetValue()
			}
		}
	}

	metrics := map[string]interface{}{
		"cache_lookups":   cacheLookups,
		"external_calls":  externalCalls,
		"recommendations": recommendations,
	}

	if m.cacheStats != nil {
		stats := m.cacheStats.GetStats()
		metrics["cache"] = map[string]interface{}{
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
	}

	return metrics, nil
}

func addNested(target map[string]map[string]float64, outer, inner string, value float64) {
	if target[outer] == nil {
		target[outer] = map[string]float64{}
	}
	target[outer][inner] += value
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}
