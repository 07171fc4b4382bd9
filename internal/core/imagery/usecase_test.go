package imagery

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "sunsip.app/internal/mocks"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

func allowLogging(l *mocks.Logger) {
	var fields []interface{}
	for i := 0; i <= 5; i++ {
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
		fields = append(fields, mock.Anything)
	}
}

type fixture struct {
	backends  []*mocks.ImageBackend
	landmarks *mocks.LandmarkSuggester
	cache     *mocks.CacheProvider
	config    *mocks.ConfigProvider
	logger    *mocks.Logger
	metrics   *mocks.MetricsCollector
}

func newFixture(t *testing.T, imageryEnabled, landmarkEnabled bool) *fixture {
	f := &fixture{
		landmarks: mocks.NewLandmarkSuggester(t),
		cache:     mocks.NewCacheProvider(t),
		config:    mocks.NewConfigProvider(t),
		logger:    mocks.NewLogger(t),
		metrics:   mocks.NewMetricsCollector(t),
	}
	for _, name := range []string{"flux-schnell", "sdxl-lightning", "stable-diffusion"} {
		backend := mocks.NewImageBackend(t)
		backend.EXPECT().GetProviderName().Return(name).Maybe()
		f.backends = append(f.backends, backend)
	}

	f.config.EXPECT().GetImageryConfig().Return(ports.ImageryConfig{Enabled: imageryEnabled}).Maybe()
	f.config.EXPECT().GetLandmarkConfig().Return(ports.LandmarkConfig{
		Enabled:    landmarkEnabled,
		MaxRetries: 3,
		BaseDelay:  time.Second,
		CacheTTL:   24 * time.Hour,
	}).Maybe()
	f.metrics.EXPECT().RecordExternalCall(mock.Anything, mock.Anything, ports.OutcomeFallback, mock.Anything).Maybe()
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, "landmarks").Maybe()
	allowLogging(f.logger)
	return f
}

func (f *fixture) useCase(t *testing.T) *UseCase {
	backends := make([]ports.ImageBackend, len(f.backends))
	for i, b := range f.backends {
		backends[i] = b
	}
	uc, err := NewUseCase(UseCaseDependencies{
		Backends:  backends,
		Landmarks: f.landmarks,
		Cache:     f.cache,
		Config:    f.config,
		Logger:    f.logger,
		Metrics:   f.metrics,
		Sleep:     func(context.Context, time.Duration) error { return nil },
	})
	require.NoError(t, err)
	return uc
}

var paris = Request{City: "Paris", Country: "France", Condition: "Sunny", IsDay: true}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ResolveCityImage_FirstBackendWins(t *testing.T) {
	f := newFixture(t, true, false)
	f.backends[0].EXPECT().GenerateImage(mock.Anything, BuildPrompt(paris, "")).Return("https://img.example/paris.png", nil)

	url := f.useCase(t).ResolveCityImage(context.Background(), paris)

	assert.Equal(t, "https://img.example/paris.png", url)
	f.backends[1].AssertNotCalled(t, "GenerateImage", mock.Anything, mock.Anything)
}

func TestUseCase_ResolveCityImage_FallsThroughBackends(t *testing.T) {
	f := newFixture(t, true, false)
	f.backends[0].EXPECT().GenerateImage(mock.Anything, mock.Anything).Return("", stderrors.New("model unavailable")).Once()
	f.backends[1].EXPECT().GenerateImage(mock.Anything, mock.Anything).Return("  ", nil).Once()
	f.backends[2].EXPECT().GenerateImage(mock.Anything, mock.Anything).Return("https://img.example/third.png", nil).Once()

	url := f.useCase(t).ResolveCityImage(context.Background(), paris)

	assert.Equal(t, "https://img.example/third.png", url)
}

func TestUseCase_ResolveCityImage_AllBackendsFail(t *testing.T) {
	f := newFixture(t, true, false)
	for _, b := range f.backends {
		b.EXPECT().GenerateImage(mock.Anything, mock.Anything).Return("", stderrors.New("boom")).Once()
	}

	url := f.useCase(t).ResolveCityImage(context.Background(), Request{City: "Oslo", Condition: "Snow", IsDay: false})

	assert.Equal(t, "https://cdn.sunsip.app/cities/snowy-night.jpg", url)
}

func TestUseCase_ResolveCityImage_DisabledUsesStockPhoto(t *testing.T) {
	f := newFixture(t, false, true)

	url := f.useCase(t).ResolveCityImage(context.Background(), Request{City: "London", Condition: "Overcast", IsDay: true})

	assert.Equal(t, "https://cdn.sunsip.app/cities/cloudy-day.jpg", url)
	f.landmarks.AssertNotCalled(t, "SuggestLandmark", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_ResolveCityImage_LandmarkEnrichesPrompt(t *testing.T) {
	f := newFixture(t, true, true)
	f.cache.EXPECT().Get(mock.Anything, "landmarks:paris:france").Return(nil, errors.NewNotFoundError("cache miss"))
	f.landmarks.EXPECT().SuggestLandmark(mock.Anything, "Paris", "France").Return("the Eiffel Tower", nil)
	f.cache.EXPECT().Set(mock.Anything, "landmarks:paris:france", []byte("the Eiffel Tower"), 24*time.Hour).Return(nil)
	f.backends[0].EXPECT().GenerateImage(mock.Anything, BuildPrompt(paris, "the Eiffel Tower")).Return("https://img.example/eiffel.png", nil)

	url := f.useCase(t).ResolveCityImage(context.Background(), paris)

	assert.Equal(t, "https://img.example/eiffel.png", url)
}

func TestUseCase_ResolveCityImage_CachedLandmark(t *testing.T) {
	f := newFixture(t, true, true)
	f.cache.EXPECT().Get(mock.Anything, "landmarks:paris:france").Return([]byte("the Louvre"), nil)
	f.metrics.EXPECT().RecordCacheHit(mock.Anything, "landmarks").Once()
	f.backends[0].EXPECT().GenerateImage(mock.Anything, BuildPrompt(paris, "the Louvre")).Return("https://img.example/louvre.png", nil)

	url := f.useCase(t).ResolveCityImage(context.Background(), paris)

	assert.Equal(t, "https://img.example/louvre.png", url)
	f.landmarks.AssertNotCalled(t, "SuggestLandmark", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_ResolveCityImage_LandmarkFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, true, true)
	f.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.NewNotFoundError("cache miss"))
	f.landmarks.EXPECT().SuggestLandmark(mock.Anything, "Paris", "France").Return("", stderrors.New("bad gateway"))
	f.backends[0].EXPECT().GenerateImage(mock.Anything, BuildPrompt(paris, "")).Return("https://img.example/plain.png", nil)

	url := f.useCase(t).ResolveCityImage(context.Background(), paris)

	assert.Equal(t, "https://img.example/plain.png", url)
}
