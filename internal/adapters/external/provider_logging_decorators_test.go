package external

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sunsip.app/internal/mocks"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

// testLogger captures log entries for assertions
type testLogger struct {
	mutex   sync.Mutex
	entries []logEntry
}

func (l *testLogger) log(level, msg string, fields []ports.Field) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	entry := logEntry{level: level, message: msg, fields: map[string]interface{}{}}
	for _, f := range fields {
		entry.fields[f.Key] = f.Value
	}
	l.entries = append(l.entries, entry)
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.log("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.log("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.log("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.log("ERROR", msg, fields) }

func TestWeatherProviderLoggingDecorator_Success(t *testing.T) {
	provider := mocks.NewWeatherProvider(t)
	provider.EXPECT().GetProviderName().Return("open-meteo")
	provider.EXPECT().GetCurrentWeather(mock.Anything, 48.85, 2.35).
		Return(&ports.WeatherData{Temperature: 22.4, Humidity: 40, ConditionCode: 1}, nil)

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordExternalCall(mock.Anything, "open-meteo", ports.OutcomeSuccess, mock.Anything).Once()

	logger := &testLogger{}
	decorator := NewWeatherProviderLoggingDecorator(provider, logger, metrics)

	data, err := decorator.GetCurrentWeather(context.Background(), 48.85, 2.35)

	require.NoError(t, err)
	assert.Equal(t, 22.4, data.Temperature)
	assert.Equal(t, "open-meteo", decorator.GetProviderName())

	require.Len(t, logger.entries, 2)
	assert.Equal(t, "INFO", logger.entries[0].level)
	assert.Equal(t, "Weather API request started", logger.entries[0].message)
	assert.Equal(t, "request", logger.entries[0].fields["event"])
	assert.Equal(t, 48.85, logger.entries[0].fields["latitude"])

	assert.Equal(t, "Weather API request completed", logger.entries[1].message)
	assert.Equal(t, "response", logger.entries[1].fields["event"])
	assert.Equal(t, 22.4, logger.entries[1].fields["temperature"])
	assert.Equal(t, 1, logger.entries[1].fields["condition_code"])
	assert.Contains(t, logger.entries[1].fields, "duration_ms")
}

func TestWeatherProviderLoggingDecorator_Failure(t *testing.T) {
	provider := mocks.NewWeatherProvider(t)
	provider.EXPECT().GetProviderName().Return("open-meteo")
	provider.EXPECT().GetCurrentWeather(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewExternalStatusError("open-meteo returned status 500", http.StatusInternalServerError))

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordExternalCall(mock.Anything, "open-meteo", ports.OutcomeFailure, mock.Anything).Once()

	logger := &testLogger{}
	decorator := NewWeatherProviderLoggingDecorator(provider, logger, metrics)

	data, err := decorator.GetCurrentWeather(context.Background(), 1, 2)

	assert.Nil(t, data)
	assert.Error(t, err)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, "WARN", logger.entries[1].level)
	assert.Equal(t, "Weather API request failed", logger.entries[1].message)
	assert.Equal(t, "error", logger.entries[1].fields["event"])
	assert.Equal(t, err.Error(), logger.entries[1].fields["error"])
}

func TestGeocodingProviderLoggingDecorator_CredentialRejectionLoggedAtDebug(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		provider := mocks.NewGeocodingProvider(t)
		provider.EXPECT().GetProviderName().Return("api-ninjas")
		provider.EXPECT().SearchCities(mock.Anything, "Paris", 5).
			Return(nil, errors.NewExternalStatusError("rejected", status))

		metrics := mocks.NewMetricsCollector(t)
		metrics.EXPECT().RecordExternalCall(mock.Anything, "api-ninjas", ports.OutcomeFailure, mock.Anything).Once()

		logger := &testLogger{}
		decorator := NewGeocodingProviderLoggingDecorator(provider, logger, metrics)

		_, err := decorator.SearchCities(context.Background(), "Paris", 5)

		assert.Error(t, err)
		require.Len(t, logger.entries, 2)
		assert.Equal(t, "DEBUG", logger.entries[1].level)
		for _, entry := range logger.entries {
			assert.NotEqual(t, "ERROR", entry.level)
			assert.NotEqual(t, "WARN", entry.level)
		}
	}
}

func TestGeocodingProviderLoggingDecorator_Success(t *testing.T) {
	provider := mocks.NewGeocodingProvider(t)
	provider.EXPECT().GetProviderName().Return("api-ninjas")
	provider.EXPECT().SearchCities(mock.Anything, "Rome", 3).
		Return([]ports.CityData{{Name: "Rome", CountryCode: "it"}}, nil)

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordExternalCall(mock.Anything, "api-ninjas", ports.OutcomeSuccess, mock.Anything).Once()

	logger := &testLogger{}
	decorator := NewGeocodingProviderLoggingDecorator(provider, logger, metrics)

	cities, err := decorator.SearchCities(context.Background(), "Rome", 3)

	require.NoError(t, err)
	assert.Len(t, cities, 1)
	assert.Equal(t, 1, logger.entries[1].fields["results"])
	assert.Equal(t, "api-ninjas", decorator.GetProviderName())
}

func TestImageBackendLoggingDecorator(t *testing.T) {
	backend := mocks.NewImageBackend(t)
	backend.EXPECT().GetProviderName().Return("flux-schnell")
	backend.EXPECT().GenerateImage(mock.Anything, "prompt").Return("https://img/paris.webp", nil)

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordExternalCall(mock.Anything, "flux-schnell", ports.OutcomeSuccess, mock.Anything).Once()

	logger := &testLogger{}
	decorator := NewImageBackendLoggingDecorator(backend, logger, metrics)

	url, err := decorator.GenerateImage(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "https://img/paris.webp", url)
	assert.Equal(t, "flux-schnell", decorator.GetProviderName())
	assert.Equal(t, "https://img/paris.webp", logger.entries[1].fields["url"])
}

func TestLandmarkSuggesterLoggingDecorator(t *testing.T) {
	suggester := mocks.NewLandmarkSuggester(t)
	suggester.EXPECT().SuggestLandmark(mock.Anything, "Paris", "France").
		Return("", errors.NewExternalStatusError("overloaded", http.StatusServiceUnavailable))

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordExternalCall(mock.Anything, "gemini", ports.OutcomeFailure, mock.Anything).Once()

	logger := &testLogger{}
	decorator := NewLandmarkSuggesterLoggingDecorator(suggester, "gemini", logger, metrics)

	_, err := decorator.SuggestLandmark(context.Background(), "Paris", "France")

	assert.Equal(t, http.StatusServiceUnavailable, errors.StatusCodeOf(err))
	assert.Equal(t, "Landmark request failed", logger.entries[1].message)
}
