package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// known short model names and their hosted model paths
var imageModels = map[string]string{
	"flux-schnell":     "black-forest-labs/flux-schnell",
	"sdxl-lightning":   "bytedance/sdxl-lightning-4step",
	"stable-diffusion": "stability-ai/stable-diffusion",
}

// ReplicateImageBackendAdapter implements ImageBackend port for one hosted image model
type ReplicateImageBackendAdapter struct {
	apiKey  string
	baseURL string
	model   string
	path    string
	client  HTTPClient
	logger  ports.Logger
}

// ReplicateImageBackendParams holds parameters for creating an image backend
type ReplicateImageBackendParams struct {
	APIKey  string
	BaseURL string
	// Model is a short name from the known table or an "owner/name" path
	Model  string
	Logger ports.Logger
	Client HTTPClient
}

type predictionRequest struct {
	Input predictionInput `json:"input"`
}

type predictionInput struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
	NumOutputs  int    `json:"num_outputs,omitempty"`
}

// PredictionResponse represents a synchronous prediction result
type PredictionResponse struct {
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  interface{}     `json:"error"`
}

// NewReplicateImageBackendAdapter creates a new image backend adapter for one model
func NewReplicateImageBackendAdapter(params ReplicateImageBackendParams) ports.ImageBackend {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.replicate.com/v1"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(imageHTTPTimeout)
	}
	model := strings.TrimSpace(params.Model)
	path, ok := imageModels[model]
	if !ok {
		path = model
	}

	return &ReplicateImageBackendAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		path:    path,
		client:  client,
		logger:  params.Logger,
	}
}

// GenerateImage runs the model on prompt and returns the first output image URL
func (b *ReplicateImageBackendAdapter) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.NewValidationError("prompt cannot be empty")
	}
	if !strings.Contains(b.path, "/") {
		return "", errors.NewConfigurationError(fmt.Sprintf("unknown image model %q", b.model), nil)
	}

	body, err := json.Marshal(predictionRequest{Input: predictionInput{
		Prompt:      prompt,
		AspectRatio: "16:9",
		NumOutputs:  1,
	}})
	if err != nil {
		return "", errors.NewExternalAPIError("failed to encode prediction request", err)
	}

	req, err := newJSONRequest(ctx, http.MethodPost,
		fmt.Sprintf("%s/models/%s/predictions", b.baseURL, b.path), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	req.Header.Set("Prefer", "wait")

	var prediction PredictionResponse
	if err := doJSONAccepting(b.client, req, &prediction, b.GetProviderName(), b.logger, http.StatusCreated); err != nil {
		return "", err
	}

	if prediction.Status == "failed" || prediction.Status == "canceled" {
		return "", errors.NewExternalAPIError(fmt.Sprintf("prediction %s: %v", prediction.Status, prediction.Error), nil)
	}

	url := firstOutputURL(prediction.Output)
	if url == "" {
		return "", errors.NewExternalAPIError("prediction returned no image", nil)
	}
	return url, nil
}

// GetProviderName returns the model name of this backend
func (b *ReplicateImageBackendAdapter) GetProviderName() string {
	return b.model
}

// firstOutputURL accepts both a single URL and a list of URLs
func firstOutputURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return strings.TrimSpace(single)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, u := range list {
			if u = strings.TrimSpace(u); u != "" {
				return u
			}
		}
	}
	return ""
}

// ImageBackendsParams holds parameters for building the ordered backend list
type ImageBackendsParams struct {
	APIKey  string
	BaseURL string
	Models  []string
	Logger  ports.Logger
	Metrics ports.MetricsCollector
	Client  HTTPClient
}

// NewImageBackends creates one logged backend per configured model, keeping the configured order
func NewImageBackends(params ImageBackendsParams) []ports.ImageBackend {
	backends := make([]ports.ImageBackend, 0, len(params.Models))
	seen := make(map[string]bool, len(params.Models))

	for _, model := range params.Models {
		model = strings.TrimSpace(model)
		if model == "" || seen[model] {
			continue
		}
		seen[model] = true

		backend := NewReplicateImageBackendAdapter(ReplicateImageBackendParams{
			APIKey:  params.APIKey,
			BaseURL: params.BaseURL,
			Model:   model,
			Logger:  params.Logger,
			Client:  params.Client,
		})
		if params.Metrics != nil {
			backend = NewImageBackendLoggingDecorator(backend, params.Logger, params.Metrics)
		}
		backends = append(backends, backend)
	}

	return backends
}
