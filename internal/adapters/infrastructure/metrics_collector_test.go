package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sunsip.app/internal/mocks"
	"sunsip.app/internal/ports"
)

func TestPrometheusMetricsCollector_Counters(t *testing.T) {
	collector := NewPrometheusMetricsCollector(MetricsCollectorConfig{})
	ctx := context.Background()

	collector.RecordCacheHit(ctx, "cities")
	collector.RecordCacheHit(ctx, "cities")
	collector.RecordCacheMiss(ctx, "landmarks")
	collector.RecordExternalCall(ctx, "open-meteo", ports.OutcomeSuccess, 120*time.Millisecond)
	collector.RecordExternalCall(ctx, "open-meteo", ports.OutcomeFallback, 0)
	collector.RecordRecommendation(ctx, "energetic")

	assert.Equal(t, float64(2), testutil.ToFloat64(collector.cacheHits.WithLabelValues("cities")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.cacheMisses.WithLabelValues("landmarks")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.externalCalls.WithLabelValues("open-meteo", ports.OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.externalCalls.WithLabelValues("open-meteo", ports.OutcomeFallback)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.recommendations.WithLabelValues("energetic")))

	// fallbacks never reached the provider, so only one latency sample exists
	assert.Equal(t, 1, testutil.CollectAndCount(collector.externalLatency, metricExternalLatency))
}

func TestPrometheusMetricsCollector_GetMetrics(t *testing.T) {
	cacheStats := mocks.NewCacheMetrics(t)
	cacheStats.EXPECT().GetStats().Return(ports.CacheStats{
		Hits:     3,
		Misses:   1,
		TotalOps: 4,
		HitRatio: 0.75,
	}).Maybe()

	collector := NewPrometheusMetricsCollector(MetricsCollectorConfig{CacheStats: cacheStats})
	ctx := context.Background()

	collector.RecordCacheHit(ctx, "cities")
	collector.RecordCacheMiss(ctx, "cities")
	collector.RecordExternalCall(ctx, "api-ninjas", ports.OutcomeFailure, time.Second)
	collector.RecordRecommendation(ctx, "relaxed")
	collector.RecordRecommendation(ctx, "relaxed")

	metrics, err := collector.GetMetrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]float64{
		"cities": {"hits": 1, "misses": 1},
	}, metrics["cache_lookups"])
	assert.Equal(t, map[string]map[string]float64{
		"api-ninjas": {ports.OutcomeFailure: 1},
	}, metrics["external_calls"])
	assert.Equal(t, map[string]float64{"relaxed": 2}, metrics["recommendations"])

	cache, ok := metrics["cache"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(3), cache["hits"])
	assert.Equal(t, 0.75, cache["hit_ratio"])
}

func TestPrometheusMetricsCollector_GetMetricsWithoutCacheStats(t *testing.T) {
	collector := NewPrometheusMetricsCollector(MetricsCollectorConfig{})

	metrics, err := collector.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, metrics, "cache")
	assert.Empty(t, metrics["recommendations"])
}

func TestPrometheusMetricsCollector_Handler(t *testing.T) {
	cacheStats := mocks.NewCacheMetrics(t)
	cacheStats.EXPECT().GetStats().Return(ports.CacheStats{HitRatio: 0.5}).Maybe()

	collector := NewPrometheusMetricsCollector(MetricsCollectorConfig{CacheStats: cacheStats})
	collector.RecordRecommendation(context.Background(), "cozy")

	server := httptest.NewServer(collector.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `sunsip_recommendations_total{mood="cozy"} 1`)
	assert.Contains(t, string(body), "sunsip_cache_hit_ratio 0.5")
}

func TestPrometheusMetricsCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetricsCollector(MetricsCollectorConfig{ProcessMetrics: true})
		NewPrometheusMetricsCollector(MetricsCollectorConfig{ProcessMetrics: true})
	})
}
