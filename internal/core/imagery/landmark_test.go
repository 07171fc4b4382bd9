package imagery

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "sunsip.app/internal/mocks"
	"sunsip.app/pkg/errors"
)

type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func overloaded() error {
	return errors.NewExternalStatusError("model overloaded", http.StatusServiceUnavailable)
}

func TestRetryingSuggester_GivesUpAfterFourAttempts(t *testing.T) {
	mockSuggester := mocks.NewLandmarkSuggester(t)
	mockLogger := mocks.NewLogger(t)
	allowLogging(mockLogger)
	recorder := &sleepRecorder{}

	mockSuggester.EXPECT().SuggestLandmark(mock.Anything, "Paris", "France").Return("", overloaded()).Times(4)

	suggester := NewRetryingSuggester(mockSuggester, 3, time.Second, recorder.sleep, mockLogger)
	landmark, err := suggester.SuggestLandmark(context.Background(), "Paris", "France")

	require.NoError(t, err)
	assert.Equal(t, "", landmark)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, recorder.delays)
}

func TestRetryingSuggester_SucceedsAfterRetry(t *testing.T) {
	mockSuggester := mocks.NewLandmarkSuggester(t)
	mockLogger := mocks.NewLogger(t)
	allowLogging(mockLogger)
	recorder := &sleepRecorder{}

	mockSuggester.EXPECT().SuggestLandmark(mock.Anything, "Rome", "Italy").Return("", overloaded()).Once()
	mockSuggester.EXPECT().SuggestLandmark(mock.Anything, "Rome", "Italy").Return(" the Colosseum ", nil).Once()

	suggester := NewRetryingSuggester(mockSuggester, 3, time.Second, recorder.sleep, mockLogger)
	landmark, err := suggester.SuggestLandmark(context.Background(), "Rome", "Italy")

	require.NoError(t, err)
	assert.Equal(t, "the Colosseum", landmark)
	assert.Equal(t, []time.Duration{time.Second}, recorder.delays)
}

func TestRetryingSuggester_OtherErrorsAreNotRetried(t *testing.T) {
	for _, failure := range []error{
		errors.NewExternalStatusError("too many requests", http.StatusTooManyRequests),
		errors.NewExternalStatusError("internal error", http.StatusInternalServerError),
		stderrors.New("connection refused"),
	} {
		mockSuggester := mocks.NewLandmarkSuggester(t)
		recorder := &sleepRecorder{}
		mockSuggester.EXPECT().SuggestLandmark(mock.Anything, "Oslo", "Norway").Return("", failure).Once()

		suggester := NewRetryingSuggester(mockSuggester, 3, time.Second, recorder.sleep, mocks.NewLogger(t))
		_, err := suggester.SuggestLandmark(context.Background(), "Oslo", "Norway")

		assert.ErrorIs(t, err, failure)
		assert.Empty(t, recorder.delays)
	}
}

func TestRetryingSuggester_StopsWhenContextEnds(t *testing.T) {
	mockSuggester := mocks.NewLandmarkSuggester(t)
	mockLogger := mocks.NewLogger(t)
	allowLogging(mockLogger)
	mockSuggester.EXPECT().SuggestLandmark(mock.Anything, "Lima", "Peru").Return("", overloaded()).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suggester := NewRetryingSuggester(mockSuggester, 3, time.Hour, nil, mockLogger)
	_, err := suggester.SuggestLandmark(ctx, "Lima", "Peru")

	assert.ErrorIs(t, err, context.Canceled)
}
