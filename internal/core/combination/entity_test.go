package combination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/weather"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestRateRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request RateRequest
		wantErr bool
	}{
		{"RatingOnly", RateRequest{Rating: intPtr(4)}, false},
		{"NotesOnly", RateRequest{Notes: strPtr("great on a patio")}, false},
		{"Both", RateRequest{Rating: intPtr(1), Notes: strPtr("too sweet")}, false},
		{"Nothing", RateRequest{}, true},
		{"RatingTooLow", RateRequest{Rating: intPtr(0)}, true},
		{"RatingTooHigh", RateRequest{Rating: intPtr(6)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRequest_IsValid(t *testing.T) {
	valid := SaveRequest{Weather: weather.Snapshot{City: "Paris"}, Cocktail: cocktail.Cocktail{Name: "Mojito"}}
	assert.NoError(t, valid.IsValid())

	noCity := SaveRequest{Cocktail: cocktail.Cocktail{Name: "Mojito"}}
	assert.EqualError(t, noCity.IsValid(), "city cannot be empty")

	noCocktail := SaveRequest{Weather: weather.Snapshot{City: "Paris"}}
	assert.EqualError(t, noCocktail.IsValid(), "cocktail cannot be empty")
}

func TestWeatherSummaryOf(t *testing.T) {
	snapshot := weather.Snapshot{City: "Paris", Country: "France", Temperature: 22, Condition: "Sunny", Humidity: 40, IsDay: true}

	summary, err := WeatherSummaryOf(snapshot)
	require.NoError(t, err)

	var decoded weather.Snapshot
	require.NoError(t, json.Unmarshal([]byte(summary), &decoded))
	assert.Equal(t, snapshot, decoded)
}
