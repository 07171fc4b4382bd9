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

func TestReplicateImageBackend_GenerateImage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/black-forest-labs/flux-schnell/predictions", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "wait", r.Header.Get("Prefer"))

		var body predictionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A photorealistic wide shot of Paris", body.Input.Prompt)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status": "succeeded", "output": ["https://replicate.delivery/paris.webp"]}`))
	}))
	defer server.Close()

	backend := NewReplicateImageBackendAdapter(ReplicateImageBackendParams{
		APIKey:  "test-token",
		BaseURL: server.URL,
		Model:   "flux-schnell",
		Logger:  setupLoggerMock(t),
	})

	url, err := backend.GenerateImage(context.Background(), "A photorealistic wide shot of Paris")

	require.NoError(t, err)
	assert.Equal(t, "https://replicate.delivery/paris.webp", url)
	assert.Equal(t, "flux-schnell", backend.GetProviderName())
}

func TestReplicateImageBackend_GenerateImage_CustomModelPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/acme/skyline/predictions", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "succeeded", "output": "https://cdn.example.com/skyline.png"}`))
	}))
	defer server.Close()

	backend := NewReplicateImageBackendAdapter(ReplicateImageBackendParams{
		BaseURL: server.URL,
		Model:   "acme/skyline",
		Logger:  setupLoggerMock(t),
	})

	url, err := backend.GenerateImage(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/skyline.png", url)
}

func TestReplicateImageBackend_GenerateImage_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "PredictionFailed", status: http.StatusCreated, body: `{"status": "failed", "error": "NSFW content detected"}`},
		{name: "NoOutput", status: http.StatusCreated, body: `{"status": "succeeded", "output": []}`},
		{name: "NullOutput", status: http.StatusOK, body: `{"status": "succeeded", "output": null}`},
		{name: "Unauthorized", status: http.StatusUnauthorized, body: `{"detail": "Invalid token"}`},
		{name: "RateLimited", status: http.StatusTooManyRequests, body: `{"detail": "slow down"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			backend := NewReplicateImageBackendAdapter(ReplicateImageBackendParams{
				BaseURL: server.URL,
				Model:   "sdxl-lightning",
				Logger:  setupLoggerMock(t),
			})

			url, err := backend.GenerateImage(context.Background(), "prompt")

			assert.Empty(t, url)
			assert.True(t, errors.IsExternalAPIError(err))
		})
	}
}

func TestReplicateImageBackend_GenerateImage_Validation(t *testing.T) {
	backend := NewReplicateImageBackendAdapter(ReplicateImageBackendParams{Model: "flux-schnell", Logger: setupLoggerMock(t)})
	_, err := backend.GenerateImage(context.Background(), " ")
	assert.True(t, errors.IsValidationError(err))

	unknown := NewReplicateImageBackendAdapter(ReplicateImageBackendParams{Model: "mystery", Logger: setupLoggerMock(t)})
	_, err = unknown.GenerateImage(context.Background(), "prompt")
	assert.True(t, errors.IsConfigurationError(err))
}

func TestFirstOutputURL(t *testing.T) {
	assert.Equal(t, "https://a", firstOutputURL(json.RawMessage(`"https://a"`)))
	assert.Equal(t, "https://b", firstOutputURL(json.RawMessage(`["", "https://b", "https://c"]`)))
	assert.Equal(t, "", firstOutputURL(json.RawMessage(`{"url": "x"}`)))
	assert.Equal(t, "", firstOutputURL(nil))
}

func TestNewImageBackends_KeepsConfiguredOrder(t *testing.T) {
	backends := NewImageBackends(ImageBackendsParams{
		Models: []string{"sdxl-lightning", " ", "flux-schnell", "sdxl-lightning", "stable-diffusion"},
		Logger: setupLoggerMock(t),
	})

	names := make([]string, 0, len(backends))
	for _, b := range backends {
		names = append(names, b.GetProviderName())
	}
	assert.Equal(t, []string{"sdxl-lightning", "flux-schnell", "stable-diffusion"}, names)
}
