package imagery

import (
	"fmt"
	"strings"

	"sunsip.app/internal/core/weather"
)

// Request describes the scene to illustrate
type Request struct {
	City      string
	Country   string
	Condition string
	IsDay     bool
}

// Normalize trims the request strings
func (r *Request) Normalize() {
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)
	r.Condition = strings.TrimSpace(r.Condition)
}

// TimeOfDay returns "day" or "night"
func (r *Request) TimeOfDay() string {
	if r.IsDay {
		return "day"
	}
	return "night"
}

// BuildPrompt describes the city scene for an image model; landmark may be empty
func BuildPrompt(request Request, landmark string) string {
	var b strings.Builder
	b.WriteString("A photorealistic wide shot of ")
	if landmark != "" {
		fmt.Fprintf(&b, "%s in ", landmark)
	}
	b.WriteString(request.City)
	if request.Country != "" && request.Country != "Unknown" {
		fmt.Fprintf(&b, ", %s", request.Country)
	}
	condition := strings.ToLower(request.Condition)
	if condition == "" {
		condition = "calm"
	}
	fmt.Fprintf(&b, " during a %s %s, cinematic lighting, no text", condition, request.TimeOfDay())
	return b.String()
}

const fallbackBaseURL = "https://cdn.sunsip.app/cities/"

// FallbackImage returns the stock photo for a condition at day or night
func FallbackImage(condition string, isDay bool) string {
	suffix := "night"
	if isDay {
		suffix = "day"
	}
	return fallbackBaseURL + string(weather.CategoryOf(condition)) + "-" + suffix + ".jpg"
}
