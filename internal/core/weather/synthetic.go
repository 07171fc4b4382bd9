package weather

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies the randomness for synthetic snapshots
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int    { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

type syntheticCondition struct {
	label   string
	icon    string
	minTemp int
	maxTemp int
}

// SyntheticConditions is the vocabulary drawn from when no live data is available
var syntheticConditions = []syntheticCondition{
	{"Sunny", "clear", 18, 35},
	{"Partly cloudy", "partly-cloudy", 12, 28},
	{"Cloudy", "cloudy", 8, 22},
	{"Overcast", "cloudy", 5, 18},
	{"Light rain", "rain", 5, 20},
	{"Heavy rain", "rain", 3, 16},
	{"Snow", "snow", -10, 5},
	{"Fog", "fog", 0, 15},
	{"Thunderstorm", "thunderstorm", 15, 30},
}

// SyntheticConditionLabels lists the labels a synthetic snapshot can carry
func SyntheticConditionLabels() []string {
	labels := make([]string, len(syntheticConditions))
	for i, c := range syntheticConditions {
		labels[i] = c.label
	}
	return labels
}

// Synthesize builds a plausible snapshot for a location without live data
func Synthesize(request Request, rng RandomSource, now time.Time) Snapshot {
	condition := syntheticConditions[rng.IntN(len(syntheticConditions))]
	isDay := rng.IntN(2) == 1

	return Snapshot{
		City:        request.City,
		Country:     request.Country,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Temperature: condition.minTemp + rng.IntN(condition.maxTemp-condition.minTemp+1),
		Condition:   condition.label,
		Icon:        iconFor(condition.icon, isDay),
		Humidity:    rng.IntN(101),
		WindSpeed:   int(rng.Float64()*30 + 0.5),
		LocalTime:   now.Format(LocalTimeLayout),
		IsDay:       isDay,
		Synthetic:   true,
	}
}
