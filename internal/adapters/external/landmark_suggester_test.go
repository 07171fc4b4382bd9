package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sunsip.app/pkg/errors"
)

func TestGeminiLandmarkSuggester_SuggestLandmark_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body generateContentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if assert.Len(t, body.Contents, 1) {
			assert.Contains(t, body.Contents[0].Parts[0].Text, "Paris, France")
		}

		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "\"Eiffel Tower.\"\n"}]}}]}`))
	}))
	defer server.Close()

	suggester := NewGeminiLandmarkSuggesterAdapter(GeminiLandmarkSuggesterParams{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Logger:  setupLoggerMock(t),
	})

	landmark, err := suggester.SuggestLandmark(context.Background(), "Paris", "France")

	require.NoError(t, err)
	assert.Equal(t, "Eiffel Tower", landmark)
}

func TestGeminiLandmarkSuggester_SuggestLandmark_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	suggester := NewGeminiLandmarkSuggesterAdapter(GeminiLandmarkSuggesterParams{BaseURL: server.URL, Logger: setupLoggerMock(t)})

	landmark, err := suggester.SuggestLandmark(context.Background(), "Springfield", "")

	require.NoError(t, err)
	assert.Empty(t, landmark)
}

func TestGeminiLandmarkSuggester_SuggestLandmark_Overloaded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"code": 503, "message": "The model is overloaded."}}`))
	}))
	defer server.Close()

	suggester := NewGeminiLandmarkSuggesterAdapter(GeminiLandmarkSuggesterParams{BaseURL: server.URL, Logger: setupLoggerMock(t)})

	_, err := suggester.SuggestLandmark(context.Background(), "Paris", "France")

	assert.Equal(t, http.StatusServiceUnavailable, errors.StatusCodeOf(err))
}

func TestGeminiLandmarkSuggester_SuggestLandmark_EmptyCity(t *testing.T) {
	suggester := NewGeminiLandmarkSuggesterAdapter(GeminiLandmarkSuggesterParams{Logger: setupLoggerMock(t)})

	_, err := suggester.SuggestLandmark(context.Background(), "", "France")

	assert.True(t, errors.IsValidationError(err))
}

func TestCleanLandmark(t *testing.T) {
	assert.Equal(t, "Colosseum", cleanLandmark("**Colosseum**"))
	assert.Equal(t, "Big Ben", cleanLandmark("Big Ben\nIt is a clock tower."))
	assert.Equal(t, "", cleanLandmark("   "))
	assert.Equal(t, "", cleanLandmark("The most iconic landmark of this city is without any doubt the historic old town with its many churches"))
}
