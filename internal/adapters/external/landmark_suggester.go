package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const maxLandmarkLength = 80

// GeminiLandmarkSuggesterAdapter implements LandmarkSuggester port with a text generation model
type GeminiLandmarkSuggesterAdapter struct {
	apiKey  string
	baseURL string
	model   string
	client  HTTPClient
	logger  ports.Logger
}

// GeminiLandmarkSuggesterParams holds parameters for creating the landmark suggester
type GeminiLandmarkSuggesterParams struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  ports.Logger
	Client  HTTPClient
}

type generateContentRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

// GenerateContentResponse represents the text generation response
type GenerateContentResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiLandmarkSuggesterAdapter creates a new landmark suggester adapter
func NewGeminiLandmarkSuggesterAdapter(params GeminiLandmarkSuggesterParams) ports.LandmarkSuggester {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := params.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(defaultHTTPTimeout)
	}

	return &GeminiLandmarkSuggesterAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  client,
		logger:  params.Logger,
	}
}

// SuggestLandmark asks the model for the single most recognisable landmark of a city.
// An overloaded model surfaces as an ExternalAPI error with status 503.
func (s *GeminiLandmarkSuggesterAdapter) SuggestLandmark(ctx context.Context, city, country string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", errors.NewValidationError("city cannot be empty")
	}

	place := city
	if country = strings.TrimSpace(country); country != "" {
		place = city + ", " + country
	}
	prompt := fmt.Sprintf("Name the single most iconic landmark of %s. Reply with the landmark name only.", place)

	body, err := json.Marshal(generateContentRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.NewExternalAPIError("failed to encode landmark request", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, url.PathEscape(s.model))
	req, err := newJSONRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", s.apiKey)

	var resp GenerateContentResponse
	if err := doJSON(s.client, req, &resp, "gemini", s.logger); err != nil {
		return "", err
	}

	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if landmark := cleanLandmark(part.Text); landmark != "" {
				return landmark, nil
			}
		}
	}
	return "", nil
}

// cleanLandmark keeps the first line without quotes or trailing punctuation
func cleanLandmark(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.Trim(text, " \t\"'*`.")
	if len(text) > maxLandmarkLength {
		return ""
	}
	return text
}
