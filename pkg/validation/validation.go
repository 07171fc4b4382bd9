package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// placeholderMarkers are substrings of sample credentials shipped in .env templates
var placeholderMarkers = []string{"your_", "your-", "changeme", "placeholder", "example", "xxx"}

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsConfiguredKey reports whether an API credential is present and not a template placeholder
func IsConfiguredKey(key string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(key))
	if trimmed == "" {
		return false
	}
	for _, marker := range placeholderMarkers {
		if strings.Contains(trimmed, marker) {
			return false
		}
	}
	return true
}

// TitleCase upper-cases the first letter of every space separated word
func TitleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// IsValidRating checks a 1-5 star rating
func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
